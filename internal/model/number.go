package model

import (
	"bytes"
	"fmt"
	"strconv"
)

// FlexInt decodes JSON numbers and numeric strings alike ("5" and 5).
// The PHP backend returns MySQL columns as strings.
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("invalid integer %q: %w", s, err)
		}
		v = int64(f)
	}
	*n = FlexInt(v)
	return nil
}

// FlexFloat is the float counterpart of FlexInt
type FlexFloat float64

func (n *FlexFloat) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}
	*n = FlexFloat(v)
	return nil
}

func (n FlexFloat) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
