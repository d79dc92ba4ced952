package assistant

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"spendtrack/internal/currencyutils"
	"spendtrack/internal/dateutils"
	"spendtrack/internal/ledger"
	"spendtrack/internal/logging"
	"spendtrack/internal/models"
)

// amountTolerance is how close a transaction amount has to be to a number
// mentioned in a query before it counts as a match.
const amountTolerance = 10.0

// Assistant answers ledger questions from loaded transaction data.
type Assistant struct {
	logger logging.Logger
}

// New creates an Assistant. A nil logger falls back to the shared logger.
func New(logger logging.Logger) *Assistant {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Assistant{logger: logger}
}

// Answer interprets the query and produces a textual response built from the
// given transactions. It always returns a response, even for queries it does
// not understand.
func (a *Assistant) Answer(query string, transactions []models.Transaction) string {
	intent := DetectIntent(query)
	a.logger.WithFields(
		logging.Field{Key: logging.FieldIntent, Value: string(intent.Action)},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Debug("Answering assistant query")

	switch intent.Action {
	case ActionSearch:
		return a.answerSearch(intent, transactions)
	case ActionSummary:
		return a.answerSummary(intent, transactions)
	case ActionExport:
		return a.answerExport(intent)
	case ActionNavigate:
		return fmt.Sprintf("Use the %s command to see that view. Run 'spendtrack --help' for details.",
			commandForTarget(intent.Target))
	case ActionInvoice:
		return "To process a receipt or invoice, run 'spendtrack scan' with the receipt text or image."
	default:
		return "I can help you find transactions, summarize spending, export CSV reports, or process receipts. " +
			"Try asking about a purchase, a category, or a month."
	}
}

func (a *Assistant) answerSearch(intent Intent, transactions []models.Transaction) string {
	if len(transactions) == 0 {
		return "I don't have any transaction data to search through. Import a ledger CSV first."
	}

	var matches []models.Transaction
	for _, term := range intent.SearchTerms {
		matches = append(matches, ledger.SearchByTerm(transactions, term)...)
	}
	if intent.Category != "" {
		matches = append(matches, ledger.SearchByTerm(transactions, intent.Category)...)
	}
	if intent.HasAmount {
		for _, tx := range transactions {
			amount, _ := tx.Amount.Float64()
			if math.Abs(amount-intent.Amount) < amountTolerance {
				matches = append(matches, tx)
			}
		}
	}
	if intent.Today {
		matches = append(matches, ledger.FilterByDay(transactions, time.Now())...)
	}

	matches = dedupe(matches)
	if len(matches) == 0 {
		return "I couldn't find any transactions matching your query. Try different words, a category name, or an amount."
	}

	sort.SliceStable(matches, func(i, j int) bool {
		di, _ := dateutils.ParseDate(matches[i].Date)
		dj, _ := dateutils.ParseDate(matches[j].Date)
		return di.After(dj)
	})

	latest := matches[0]
	plural := ""
	if len(matches) > 1 {
		plural = "s"
	}
	return fmt.Sprintf(
		"I found %d matching transaction%s. Here's the most recent one:\n\n"+
			"Amount: %s\nDate: %s\nCategory: %s\nDescription: %s",
		len(matches), plural,
		currencyutils.FormatAmount(latest.Amount, latest.Currency),
		latest.Date, latest.Category, latest.Description,
	)
}

func (a *Assistant) answerSummary(intent Intent, transactions []models.Transaction) string {
	filtered := transactions
	if intent.Category != "" {
		filtered = ledger.SearchByTerm(filtered, intent.Category)
	}
	if intent.Month != "" {
		if month, err := time.Parse("January", titleMonth(intent.Month)); err == nil {
			target := time.Date(time.Now().Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
			filtered = ledger.FilterByMonth(filtered, target)
		}
	}
	if len(filtered) == 0 {
		return "No transactions match that summary request."
	}

	summary := ledger.Summarize(filtered, time.Now())
	var b strings.Builder
	fmt.Fprintf(&b, "You have %d transactions totaling %s across %d categories.",
		summary.TransactionCount,
		currencyutils.FormatAmount(summary.Total, summary.Currency),
		summary.CategoryCount)
	if len(summary.ByCategory) > 0 {
		top := summary.ByCategory[0]
		fmt.Fprintf(&b, " Your biggest category is %s at %s.", top.Category, top.Total.StringFixed(2))
	}
	return b.String()
}

func (a *Assistant) answerExport(intent Intent) string {
	args := []string{"spendtrack export -i <ledger.csv> -o <output.csv>"}
	if intent.Category != "" {
		args = append(args, fmt.Sprintf("--category %q", intent.Category))
	}
	if intent.Month != "" {
		args = append(args, fmt.Sprintf("--month %s", monthFlag(intent.Month)))
	}
	return "To export a CSV report, run:\n\n  " + strings.Join(args, " ")
}

func commandForTarget(target string) string {
	switch target {
	case "summary", "dashboard":
		return "summary"
	case "invoice":
		return "scan"
	default:
		return "export"
	}
}

// monthFlag turns a month name into the YYYY-MM form the export command takes,
// assuming the current year.
func monthFlag(name string) string {
	month, err := time.Parse("January", titleMonth(name))
	if err != nil {
		return name
	}
	return fmt.Sprintf("%d-%02d", time.Now().Year(), int(month.Month()))
}

// titleMonth capitalizes a lowercase month name for time.Parse.
func titleMonth(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func dedupe(transactions []models.Transaction) []models.Transaction {
	seen := make(map[string]struct{}, len(transactions))
	var unique []models.Transaction
	for _, tx := range transactions {
		key := tx.ID
		if key == "" {
			key = tx.Date + "|" + tx.Description + "|" + tx.Amount.String()
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, tx)
	}
	return unique
}
