package chat

import (
	"strings"
	"unicode"
)

// Category is the topic bucket used to pick a response.
type Category string

const (
	CategoryGreeting       Category = "greeting"
	CategoryStore          Category = "store"
	CategoryProduct        Category = "product"
	CategoryCart           Category = "cart"
	CategoryOrder          Category = "order"
	CategoryHelp           Category = "help"
	CategoryRecommendation Category = "recommendation"
	CategoryElectronics    Category = "electronics"
	CategoryFashion        Category = "fashion"
	CategoryHome           Category = "home"
	CategoryBooks          Category = "books"
	CategorySports         Category = "sports"
	CategoryPricing        Category = "pricing"
	CategoryDefault        Category = "default"
)

var greetings = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}

type topic struct {
	category Category
	keywords []string
}

// topics are checked in order; the first set with a matching substring wins.
var topics = []topic{
	{CategoryStore, []string{"store", "shop"}},
	{CategoryProduct, []string{"product", "find", "search"}},
	{CategoryCart, []string{"cart", "checkout", "buy"}},
	{CategoryOrder, []string{"order", "delivery", "shipping"}},
	{CategoryHelp, []string{"help", "support", "problem"}},
	{CategoryRecommendation, []string{"recommend", "suggest", "best"}},
	{CategoryElectronics, []string{"electronics", "phone", "laptop"}},
	{CategoryFashion, []string{"fashion", "clothes", "wear"}},
	{CategoryHome, []string{"home", "furniture", "decor"}},
	{CategoryBooks, []string{"book", "read"}},
	{CategorySports, []string{"sports", "fitness", "exercise"}},
	{CategoryPricing, []string{"price", "cost", "cheap", "deal"}},
}

// Normalize lowercases and trims user input.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Classify maps user text to a category. Greetings take priority over topics.
func Classify(text string) Category {
	message := Normalize(text)

	if IsGreeting(message) {
		return CategoryGreeting
	}
	for _, t := range topics {
		if containsAny(message, t.keywords) {
			return t.category
		}
	}
	return CategoryDefault
}

// IsGreeting reports whether a normalized message contains a greeting as whole
// words, so "this" or "shipping" do not count as "hi".
func IsGreeting(message string) bool {
	words := strings.FieldsFunc(message, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	padded := " " + strings.Join(words, " ") + " "
	for _, g := range greetings {
		if strings.Contains(padded, " "+g+" ") {
			return true
		}
	}
	return false
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
