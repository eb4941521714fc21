package eventor

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Defaults Eventor applies to open ended ranges. They are sent explicitly
// whenever a range field is left empty.
const (
	DefaultFromDate      = "0000-01-01"
	DefaultToDate        = "9999-12-31"
	DefaultFromTimestamp = "0000-01-01 00:00:00"
	DefaultToTimestamp   = "9999-12-31 23:59:59"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// Identifier is any id type Eventor accepts in a comma separated list.
type Identifier interface {
	~int | ~int32 | ~int64 | ~string
}

// EncodeList renders ids as a comma separated list value. Every element is
// preceded by a comma, so the result starts with one: [1 2 3] encodes to
// ",1,2,3". Eventor accepts this form and existing recorded traffic relies
// on it. An empty slice encodes to "".
func EncodeList[T Identifier](ids []T) string {
	var b strings.Builder
	for _, id := range ids {
		b.WriteByte(',')
		b.WriteString(formatID(id))
	}
	return b.String()
}

// formatID renders the underlying value, bypassing any String method so a
// Classification encodes as its number rather than its label.
func formatID[T Identifier](id T) string {
	v := reflect.ValueOf(id)
	if v.Kind() == reflect.String {
		return v.String()
	}
	return strconv.FormatInt(v.Int(), 10)
}

// FormatDate renders t in the yyyy-mm-dd form used by date parameters.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatTimestamp renders t in the yyyy-mm-dd hh:mm:ss form used by
// modification and entry time parameters.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// params builds the query of a single request.
type params struct {
	url.Values
}

func newParams() params {
	return params{Values: url.Values{}}
}

func (p params) set(key, value string) {
	p.Values.Set(key, value)
}

// setDefault sends value, or def when value is empty.
func (p params) setDefault(key, value, def string) {
	if value == "" {
		value = def
	}
	p.Values.Set(key, value)
}

func (p params) setBool(key string, value bool) {
	p.Values.Set(key, formatBool(value))
}

func (p params) setID(key string, id int64) {
	p.Values.Set(key, strconv.FormatInt(id, 10))
}

// setOptionalID omits the key for a zero id.
func (p params) setOptionalID(key string, id int64) {
	if id != 0 {
		p.setID(key, id)
	}
}

func (p params) setOptionalInt(key string, n int) {
	if n != 0 {
		p.Values.Set(key, strconv.Itoa(n))
	}
}

// setList omits the key for an empty list.
func setList[T Identifier](p params, key string, ids []T) {
	if len(ids) > 0 {
		p.Values.Set(key, EncodeList(ids))
	}
}
