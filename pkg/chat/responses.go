package chat

import (
	"fmt"
	"strings"
)

const ApologyMessage = "I'm having trouble processing your request right now. Please try again in a moment."

var greetingReplies = []string{
	"Hello! Welcome to MarketHub. I can help you find products, explore stores, or sort out your cart. What are you shopping for today?",
	"Hi there! I'm your shopping assistant. Ask me about stores, products, deals or your cart and I'll point you the right way.",
	"Hey! Good to see you at MarketHub. Want some recommendations, or are you looking for something specific?",
}

var defaultReplies = []string{
	"Interesting question! Could you tell me a bit more about what you're looking for?",
	"I'd love to help with that. Can you give me a few more details, like a product type, a store or a budget?",
	"Thanks for reaching out! To give you the most useful answer, could you clarify what you need today?",
	"I didn't quite catch that, but I can help with product searches, store recommendations, cart questions and more. What would be most helpful?",
	"I'm here to help you find exactly what you need. Could you tell me more about what you're interested in?",
}

var recommendationReplies = []string{
	"Popular right now:\n\n- Smartphones in Electronics\n- Sneakers in Fashion\n- Indoor plants in Home & Garden\n- Bestselling novels in Books\n- Fitness gear in Sports",
	"Trending across our stores:\n\n- Laptops for work and gaming\n- Summer dresses\n- Ergonomic office chairs\n- Self-help titles\n- Yoga mats",
}

var fixedReplies = map[Category][]string{
	CategoryProduct: {
		"I can help you find the right product:\n\n- Use the search bar to look up items by name\n- Browse by category inside each store\n- Check ratings before you buy\n- Compare prices across similar products\n\nWhat are you looking for?",
	},
	CategoryOrder: {
		"About orders:\n\n- Processing takes 24-48 hours\n- Standard delivery: 3-5 business days\n- Express delivery: 1-2 business days\n- You get an email confirmation with tracking\n- Returns are accepted within 30 days\n\nIs there a specific order I can help with?",
	},
	CategoryHelp: {
		"I can help with:\n\n- Finding the right store\n- Searching for products\n- Adding, removing or updating cart items\n- Checking out\n- Order status and delivery\n- Deals and discounts\n\nWhat do you need a hand with?",
	},
	CategoryElectronics: {
		"Our Electronics store carries smartphones, laptops, headphones and speakers, smart home devices and wearables. Looking for anything in particular?",
	},
	CategoryFashion: {
		"Fashion has men's and women's clothing, footwear, bags and accessories, plus seasonal collections. What style are you after?",
	},
	CategoryHome: {
		"Home & Garden covers living room and bedroom furniture, dining sets, plants and garden tools, and decor like lamps, rugs and wall art. Which room are you upgrading?",
	},
	CategoryBooks: {
		"The Books store has fiction, non-fiction, children's books, textbooks and e-books. What genre do you enjoy?",
	},
	CategorySports: {
		"Sports has fitness equipment, athletic footwear, sportswear, gear for team sports and outdoor kit for camping, hiking and cycling. What activity are you shopping for?",
	},
	CategoryPricing: {
		"Looking for a good deal? Compare similar products across stores, watch for items on sale, bundle purchases, and check reviews so you get quality for the price. What's your budget?",
	},
}

func storeReply(cc Context) string {
	if cc.CurrentStore != nil {
		store := cc.CurrentStore
		if len(store.Categories) == 0 {
			return fmt.Sprintf("You're browsing %s! I can help you find something here or guide you to another store. What are you looking for?", store.Name)
		}
		return fmt.Sprintf("You're browsing %s! This store specializes in %s. I can help you find something here or guide you to another store. What are you looking for?",
			store.Name, strings.Join(store.Categories, ", "))
	}

	if len(cc.Stores) == 0 {
		return "MarketHub brings together stores for electronics, fashion, home & garden, books and sports. Which one would you like to explore?"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "MarketHub has %d %s:\n\n", len(cc.Stores), plural(len(cc.Stores), "store", "stores"))
	for _, s := range cc.Stores {
		sb.WriteString("- ")
		sb.WriteString(s.Name)
		if s.Description != "" {
			sb.WriteString(": ")
			sb.WriteString(s.Description)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\nWhich store would you like to explore?")
	return sb.String()
}

func cartReply(cc Context) string {
	if cc.CartCount > 0 {
		return fmt.Sprintf("You have %d %s in your cart! You can review them from the cart icon, update quantities, keep shopping, or head to checkout when you're ready. Anything specific about your cart?",
			cc.CartCount, plural(cc.CartCount, "item", "items"))
	}
	return "Your cart is empty right now, but that's easy to fix: browse any store, hit \"Add to Cart\" on what you like, adjust quantities, and check out when you're ready. Want some recommendations to get started?"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
