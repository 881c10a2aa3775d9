package helper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// BigID adalah ID numerik lebar (BIGINT) yang selalu diserialisasi sebagai
// string di JSON, karena nilainya bisa melewati batas aman integer JavaScript.
// Satu codec ini dipakai semua handler — tidak ada konversi ad hoc per endpoint.
type BigID int64

func (id BigID) Int64() int64 { return int64(id) }

func (id BigID) String() string { return strconv.FormatInt(int64(id), 10) }

func (id BigID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatInt(int64(id), 10) + `"`), nil
}

// UnmarshalJSON menerima angka JSON maupun string angka ("42" atau 42).
func (id *BigID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("bigid: nilai %q bukan angka", s)
	}
	*id = BigID(n)
	return nil
}

// ParseBigID mem-parse id numerik dari string (path param / body string).
func ParseBigID(s string) (BigID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("id tidak valid: %q", s)
	}
	return BigID(n), nil
}

// BigIDParam mengambil BigID dari path param; 400 kalau bukan angka.
func BigIDParam(c *fiber.Ctx, name string) (BigID, error) {
	id, err := ParseBigID(c.Params(name))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "ID kebijakan tidak valid")
	}
	return id, nil
}
