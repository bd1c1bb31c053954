// Package services holds collaborators that sit outside the ledger core.
package services

import "strings"

// KnowledgeBaseEntry pairs a keyword with its canned answer. Entries are
// matched in order, so earlier keywords win when a question mentions several.
type KnowledgeBaseEntry struct {
	Keyword string
	Answer  string
}

const fallbackAnswer = "I'm here to help! You can ask me about the menu, placing orders, delivery, wallet management, or any other questions about our platform."

// ChatService answers support questions from a fixed knowledge base. There
// is no model behind it; questions with no matching keyword get a generic
// fallback.
type ChatService struct {
	knowledgeBase []KnowledgeBaseEntry
}

// NewChatService returns a ChatService loaded with the platform knowledge
// base.
func NewChatService() *ChatService {
	return &ChatService{
		knowledgeBase: []KnowledgeBaseEntry{
			{Keyword: "menu", Answer: "You can browse our menu by clicking on the 'Menu' link in the navigation."},
			{Keyword: "order", Answer: "To place an order, add items to your cart from the menu page, then proceed to checkout."},
			{Keyword: "delivery", Answer: "Our delivery system uses a bidding model. Delivery staff can bid on orders."},
			{Keyword: "wallet", Answer: "You can deposit money to your wallet from the customer dashboard."},
		},
	}
}

// Answer returns the canned answer for the first configured keyword contained
// in the lowercased question, and whether the answer came from the knowledge
// base.
func (s *ChatService) Answer(question string) (string, bool) {
	q := strings.ToLower(question)
	for _, entry := range s.knowledgeBase {
		if strings.Contains(q, entry.Keyword) {
			return entry.Answer, true
		}
	}
	return fallbackAnswer, false
}
