package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const TimestampLayout = "2006-01-02 15:04:05"

// FormatValue renders a cell for flat files. Missing values become empty
// cells.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case decimal.Decimal:
		return val.StringFixed(2)
	case time.Time:
		return val.Format(TimestampLayout)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func jsonValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil, string, int:
		return val
	case decimal.Decimal:
		return val.StringFixed(2)
	default:
		return FormatValue(val)
	}
}
