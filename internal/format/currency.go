package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Currency renders a price as a dollar string with thousands separators and
// no decimal places, e.g. 452875.4 -> "$452,875". Fractional cents are
// truncated, matching how the estimate is presented to the user.
func Currency(amount float64) string {
	return fmt.Sprintf("$%s", humanize.Comma(int64(amount)))
}
