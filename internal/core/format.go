package core

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	receiptIDPrefix = "RCP-"
	invoiceIDPrefix = "INV-"
	idSuffixDigits  = 6
	dateLayout      = "1/2/2006"
)

var numericPrefix = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?`)

var timeAgoUnits = []struct {
	seconds float64
	name    string
}{
	{31536000, "years"},
	{2592000, "months"},
	{86400, "days"},
	{3600, "hours"},
	{60, "minutes"},
}

// newReceiptID is the prefix plus the last six digits of the unix millisecond clock.
// Two receipts created 1000 seconds apart, or within the same millisecond, collide.
func newReceiptID(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > idSuffixDigits {
		millis = millis[len(millis)-idSuffixDigits:]
	}
	return receiptIDPrefix + millis
}

func invoiceID(receiptID string) string {
	return invoiceIDPrefix + strings.TrimPrefix(receiptID, receiptIDPrefix)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// parseAmount reads the number in front of the first space of a "<number> <symbol>" amount.
// Anything that does not start with a number counts as zero.
func parseAmount(amount string) decimal.Decimal {
	head, _, _ := strings.Cut(amount, " ")
	match := numericPrefix.FindString(strings.TrimPrefix(head, "+"))
	if match == "" {
		return decimal.Zero
	}
	if strings.HasPrefix(match, ".") || strings.HasPrefix(match, "-.") {
		match = strings.Replace(match, ".", "0.", 1)
	}

	value, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero
	}
	return value
}

func formatTimeAgo(now, then time.Time) string {
	seconds := math.Floor(now.Sub(then).Seconds())

	for _, unit := range timeAgoUnits {
		interval := seconds / unit.seconds
		if interval > 1 {
			return fmt.Sprintf("%d %s ago", int64(math.Floor(interval)), unit.name)
		}
	}

	return fmt.Sprintf("%d seconds ago", int64(seconds))
}
