package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Category
	}{
		{"plain greeting", "hi there", CategoryGreeting},
		{"greeting wins over topic", "Hello, where is my order?", CategoryGreeting},
		{"multi word greeting", "Good evening!", CategoryGreeting},
		{"hi inside a word is not a greeting", "what's the price of this cheap item", CategoryPricing},
		{"shipping is an order topic", "how long does shipping take", CategoryOrder},
		{"store before product", "find me a store", CategoryStore},
		{"product keywords", "can you search for headphones", CategoryProduct},
		{"cart keywords", "I want to buy this", CategoryCart},
		{"help keywords", "I have a problem", CategoryHelp},
		{"recommendation keywords", "what do you suggest", CategoryRecommendation},
		{"electronics", "looking for a laptop", CategoryElectronics},
		{"fashion", "new clothes please", CategoryFashion},
		{"home", "furniture for my bedroom", CategoryHome},
		{"books", "a good book", CategoryBooks},
		{"sports", "fitness gear", CategorySports},
		{"case insensitive", "  PRICE?  ", CategoryPricing},
		{"fallback", "purple elephant migration", CategoryDefault},
		{"empty input", "", CategoryDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestIsGreeting(t *testing.T) {
	assert.True(t, IsGreeting("hey"))
	assert.True(t, IsGreeting("well, hi!"))
	assert.False(t, IsGreeting("this"))
	assert.False(t, IsGreeting("good morningstar"))
}
