// Package classify implements expense description categorization. It offers
// two complementary approaches: a rule-based keyword scan that is cheap enough
// to run on every keystroke, and a small dense network trained in-process on a
// fixed labeled corpus.
package classify

import "spendtrack/internal/models"

// trainingExample pairs a keyword blob with the category it illustrates.
type trainingExample struct {
	Text     string
	Category string
}

// trainingCorpus is the fixed labeled corpus both classifiers are built from:
// one keyword blob per category, "Other" being the implicit fallback. The
// slice order is significant twice over: the rule-based scan resolves keyword
// ties by corpus order, and the vocabulary assigns word indices by scanning
// the corpus front to back. Never mutated at runtime.
var trainingCorpus = []trainingExample{
	{Text: "starbucks coffee cappuccino latte espresso cafe restaurant mcdonalds burger pizza food dinner lunch breakfast meal", Category: models.CategoryFoodBeverage},
	{Text: "uber lyft taxi cab grab gojek bus train subway metro transport commute travel fare ride driver car", Category: models.CategoryTransportation},
	{Text: "amazon ebay walmart target store shopping mall purchase buy clothes apparel shoes retail online shop ecommerce", Category: models.CategoryShopping},
	{Text: "netflix hulu movie cinema theater concert disney+ show spotify streaming music theater ticket", Category: models.CategoryEntertainment},
	{Text: "rent apartment mortgage lease housing condo property home real estate landlord", Category: models.CategoryHousing},
	{Text: "electricity power gas water utility bill internet wifi broadband phone telecom", Category: models.CategoryUtilities},
	{Text: "doctor hospital clinic pharmacy medicine prescription health dental medical insurance care", Category: models.CategoryHealthcare},
	{Text: "tuition school college university course class textbook books education student campus exam", Category: models.CategoryEducation},
	{Text: "flight airline hotel airbnb booking vacation holiday trip resort tourism tour", Category: models.CategoryTravel},
	{Text: "haircut salon spa gym fitness beauty personal care hygiene cosmetics makeup skincare", Category: models.CategoryPersonalCare},
	{Text: "donation charity gift present give fundraiser donate contribution nonprofit organization", Category: models.CategoryGiftsDonations},
}
