package lexicon

// Default returns the built-in product-review lexicon. It is constructed
// fresh on every call so callers can never mutate shared state; the
// Summarizer builds it once and shares it read-only.
func Default() *Lexicon {
	return New(defaultPositive(), defaultNegative(), defaultStopwords(), defaultAspects())
}

func defaultPositive() []string {
	return []string{
		"excellent", "great", "amazing", "wonderful", "fantastic", "perfect",
		"love", "best", "awesome", "brilliant", "outstanding", "superb",
		"good", "nice", "happy", "pleased", "satisfied", "recommend",
		"quality", "durable", "reliable", "comfortable", "easy", "fast",
		"beautiful", "sturdy", "worth", "impressed", "exceeded",
	}
}

func defaultNegative() []string {
	return []string{
		"bad", "terrible", "horrible", "awful", "poor", "worst",
		"hate", "disappointing", "disappointed", "waste", "useless", "broken",
		"defective", "cheap", "flimsy", "uncomfortable", "difficult", "slow",
		"unreliable", "fragile", "overpriced", "regret", "avoid", "never",
		"problem", "issue", "fail",
	}
}

func defaultStopwords() []string {
	return []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
		"for", "of", "with", "is", "was", "are", "were", "been", "be",
		"have", "has", "had", "do", "does", "did", "will", "would",
		"could", "should", "may", "might", "must", "can", "this", "that",
		"these", "those", "i", "you", "he", "she", "it", "we", "they",
		"my", "your", "his", "her", "its", "our", "their", "am", "get",
		"got", "just", "very", "really", "so",
	}
}

// defaultAspects returns the fixed aspect table. Order matters: the
// classifier takes the first category whose keyword matches.
func defaultAspects() []Category {
	return []Category{
		{Name: "quality", Keywords: []string{"quality", "build", "material", "construction", "made"}},
		{Name: "price", Keywords: []string{"price", "cost", "expensive", "cheap", "value", "worth"}},
		{Name: "durability", Keywords: []string{"durable", "last", "lasting", "sturdy", "strong", "break"}},
		{Name: "design", Keywords: []string{"design", "look", "appearance", "style", "aesthetic", "beautiful"}},
		{Name: "performance", Keywords: []string{"performance", "work", "fast", "slow", "efficient", "speed"}},
		{Name: "comfort", Keywords: []string{"comfort", "comfortable", "soft", "easy", "ergonomic"}},
		{Name: "delivery", Keywords: []string{"delivery", "shipping", "arrive", "package", "received"}},
		{Name: "customer_service", Keywords: []string{"service", "support", "customer", "help", "response"}},
	}
}
