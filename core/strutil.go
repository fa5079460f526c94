package core

// Integer formatting without fmt or strconv, to keep the firmware image
// small. Diagnostics are the only consumer.

// itoa formats a signed integer in decimal.
func itoa(n int) string {
	if n < 0 {
		return "-" + utoa(uint32(-n))
	}
	return utoa(uint32(n))
}

// utoa formats an unsigned integer in decimal.
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}
	var buf [10]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}
