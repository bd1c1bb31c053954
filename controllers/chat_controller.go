package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai-slice/ai-slice-api/services"
)

// ChatRequest represents the request body for a support question
type ChatRequest struct {
	Question string `json:"question"`
}

// RateAnswerRequest represents the request body for rating a chat answer
type RateAnswerRequest struct {
	Rating float64 `json:"rating"`
}

// Chat handles POST /api/ai/chat - answers a question from the local
// knowledge base, with a generic fallback for everything else
func Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	chat := services.NewChatService()
	answer, fromLocalKB := chat.Answer(req.Question)

	c.JSON(http.StatusOK, gin.H{
		"answer":      answer,
		"fromLocalKB": fromLocalKB,
	})
}

// RateAnswer handles POST /api/ai/rate - records feedback on a chat answer.
// A zero rating flags the answer for manager review; no review queue is
// persisted.
func RateAnswer(c *gin.Context) {
	var req RateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if req.Rating == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Answer flagged for manager review",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Rating recorded",
	})
}
