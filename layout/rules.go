package layout

import "strings"

// ClassificationRule maps an item id predicate to a layout category. Rules
// are evaluated in order and the first match wins.
type ClassificationRule struct {
	Name     string
	Matches  func(id string) bool
	Category Category
}

func exactRule(id string, category Category) ClassificationRule {
	return ClassificationRule{
		Name:     "exact:" + id,
		Matches:  func(candidate string) bool { return candidate == id },
		Category: category,
	}
}

func prefixRule(prefix string, category Category) ClassificationRule {
	return ClassificationRule{
		Name:     "prefix:" + prefix,
		Matches:  func(candidate string) bool { return strings.HasPrefix(candidate, prefix) },
		Category: category,
	}
}

// classificationRules routes ids to layout categories. Exact matches come
// first so specific items can escape their prefix family (string lighting
// paints above the rest of the lighting layer, lantern and aisle accents sit
// on their own layers). Order matters.
var classificationRules = []ClassificationRule{
	exactRule("floral-arch-arrangement", CategoryArchFlorals),
	exactRule("floral-sofa-wrap", CategorySofaFlorals),
	exactRule("floral-aisle-boxes", CategoryAisle),
	exactRule("floral-centerpieces", CategoryCenterpieces),
	exactRule("lighting-string-addition", CategoryStringLights),
	exactRule("accent-lantern-set", CategoryLanterns),
	exactRule("accent-aisle-runner", CategoryAisle),
	exactRule("stage-carpet", CategoryCarpet),
	prefixRule("backdrop-", CategoryBackdrop),
	prefixRule("arch-", CategoryArch),
	prefixRule("sofa-", CategorySeating),
	prefixRule("chairs-", CategorySeating),
	prefixRule("cushions-", CategorySeating),
	prefixRule("lighting-", CategoryLighting),
	prefixRule("accent-", CategoryAccentPanels),
	prefixRule("stage-", CategoryPlatform),
}

// Classify maps an item id to its layout category. Total over all ids: an id
// no rule matches falls through to the default category.
func Classify(id string) Category {
	for _, rule := range classificationRules {
		if rule.Matches(id) {
			return rule.Category
		}
	}
	return CategoryDefault
}
