package term

import "strconv"

func itoa(n int) string      { return strconv.Itoa(n) }
func utoa(n uint64) string   { return strconv.FormatUint(n, 10) }
func ftoa(f float64) string  { return strconv.FormatFloat(f, 'g', -1, 64) }
func quote(s string) string  { return strconv.Quote(s) }
