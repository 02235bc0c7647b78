package trace

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// digest hashes the type and formatted value of every argument, in order.
func digest(args []any) uint64 {
	d := xxhash.New()
	for _, arg := range args {
		fmt.Fprintf(d, "%T:%v\x00", arg, arg)
	}
	return d.Sum64()
}
