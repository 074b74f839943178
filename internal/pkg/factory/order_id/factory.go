package order_id

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	prefix = "#"
	length = 9
)

type IDFactory struct {
	random func() [16]byte
}

func New() *IDFactory {
	return &IDFactory{
		random: func() [16]byte { return uuid.New() },
	}
}

// Generate возвращает короткий id вида "#K3J9QX0ZA": 9 символов base36 в верхнем регистре.
func (f *IDFactory) Generate() string {
	raw := f.random()
	n := binary.BigEndian.Uint64(raw[:8])

	token := strings.ToUpper(strconv.FormatUint(n, 36))
	if len(token) < length {
		token = strings.Repeat("0", length-len(token)) + token
	}
	return prefix + token[len(token)-length:]
}
