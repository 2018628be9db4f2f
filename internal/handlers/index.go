package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index returns a machine-readable overview of the API surface.
// @Summary     API index
// @Description Lists the API name, version and available endpoint groups
// @Tags        meta
// @Produce     json
// @Success     200 {object} map[string]interface{}
// @Router      / [get]
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Vita API",
		"version":     "1.0.0",
		"description": "RESTful API for the Vita personal productivity dashboard",
		"endpoints": gin.H{
			"home": gin.H{
				"GET": gin.H{
					"/":       "API index.",
					"/health": "Service health check.",
				},
			},
			"auth": gin.H{
				"POST": gin.H{
					"/auth/register":        "Create a new user account.",
					"/auth/login":           "Log in and receive a token.",
					"/auth/forgot-password": "Request a password reset email.",
					"/auth/reset-password":  "Redeem a reset token with a new password.",
				},
				"GET": gin.H{
					"/auth/profile": "Show the authenticated user's profile.",
				},
				"PUT": gin.H{
					"/auth/profile":  "Update display name or email.",
					"/auth/password": "Change the account password.",
				},
				"DELETE": gin.H{
					"/auth/account": "Delete the account and all its data.",
				},
			},
			"tasks": gin.H{
				"GET":    gin.H{"/tasks": "List tasks, newest first."},
				"POST":   gin.H{"/tasks": "Create a task."},
				"PUT":    gin.H{"/tasks/:id": "Update a task."},
				"PATCH":  gin.H{"/tasks/:id/toggle": "Toggle task completion."},
				"DELETE": gin.H{"/tasks/:id": "Delete a task."},
			},
			"notes": gin.H{
				"GET":    gin.H{"/notes": "List notes, newest first."},
				"POST":   gin.H{"/notes": "Create a note."},
				"PUT":    gin.H{"/notes/:id": "Replace a note."},
				"DELETE": gin.H{"/notes/:id": "Delete a note."},
			},
			"calendarEvents": gin.H{
				"GET":    gin.H{"/calendarEvents": "List calendar events."},
				"POST":   gin.H{"/calendarEvents": "Create a calendar event."},
				"PUT":    gin.H{"/calendarEvents/:id": "Update a calendar event."},
				"DELETE": gin.H{"/calendarEvents/:id": "Delete a calendar event."},
			},
			"pomodoroTasks": gin.H{
				"GET": gin.H{
					"/pomodoroTasks":           "List pomodoro tasks.",
					"/pomodoroTasks/completed": "List completed pomodoro tasks.",
				},
				"POST":   gin.H{"/pomodoroTasks": "Create a pomodoro task."},
				"PUT":    gin.H{"/pomodoroTasks/:id": "Update a pomodoro task."},
				"DELETE": gin.H{"/pomodoroTasks/:id": "Delete a pomodoro task."},
			},
		},
		"documentation": "/swagger/index.html",
	})
}
