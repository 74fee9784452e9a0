//go:build windows

package zipwire

// madeByVersion is the central directory version-made-by word: host system
// 11 (Windows NTFS) in the high byte, ZIP spec 6.2 in the low byte.
const madeByVersion = 11<<8 | 62
