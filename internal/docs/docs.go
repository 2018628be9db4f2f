// Package docs registers the Swagger specification served by gin-swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {
                    "201": {"description": "User registered and token generated"},
                    "400": {"description": "Invalid input or identity already in use"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login user",
                "responses": {
                    "200": {"description": "User authenticated and token generated"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/forgot-password": {
            "post": {
                "tags": ["auth"],
                "summary": "Request password reset",
                "responses": {
                    "200": {"description": "Reset email sent"},
                    "404": {"description": "User not found"}
                }
            }
        },
        "/auth/reset-password": {
            "post": {
                "tags": ["auth"],
                "summary": "Reset password",
                "responses": {
                    "200": {"description": "Password reset"},
                    "400": {"description": "Invalid or expired token"}
                }
            }
        },
        "/auth/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["user"],
                "summary": "Get user profile",
                "responses": {"200": {"description": "User profile"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["user"],
                "summary": "Update user profile",
                "responses": {"200": {"description": "Updated profile and fresh token"}}
            }
        },
        "/auth/password": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["user"],
                "summary": "Change password",
                "responses": {"200": {"description": "Password changed and fresh token issued"}}
            }
        },
        "/auth/account": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["user"],
                "summary": "Delete account",
                "responses": {"200": {"description": "Account deleted"}}
            }
        },
        "/tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["tasks"],
                "summary": "List tasks",
                "responses": {"200": {"description": "Tasks"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["tasks"],
                "summary": "Create a task",
                "responses": {"201": {"description": "Task created"}}
            }
        },
        "/tasks/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["tasks"],
                "summary": "Get task by ID",
                "responses": {"200": {"description": "Task details"}, "404": {"description": "Task not found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["tasks"],
                "summary": "Update task",
                "responses": {"200": {"description": "Updated task"}, "404": {"description": "Task not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["tasks"],
                "summary": "Delete task",
                "responses": {"200": {"description": "Task deleted"}, "404": {"description": "Task not found"}}
            }
        },
        "/tasks/{id}/toggle": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["tasks"],
                "summary": "Toggle task completion",
                "responses": {"200": {"description": "Toggled task"}, "404": {"description": "Task not found"}}
            }
        },
        "/notes": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["notes"],
                "summary": "List notes",
                "responses": {"200": {"description": "Notes"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["notes"],
                "summary": "Create a note",
                "responses": {"201": {"description": "Note created"}}
            }
        },
        "/notes/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["notes"],
                "summary": "Get note by ID",
                "responses": {"200": {"description": "Note details"}, "404": {"description": "Note not found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["notes"],
                "summary": "Update note",
                "responses": {"200": {"description": "Updated note"}, "404": {"description": "Note not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["notes"],
                "summary": "Delete note",
                "responses": {"200": {"description": "Note deleted"}, "404": {"description": "Note not found"}}
            }
        },
        "/calendarEvents": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["calendar-events"],
                "summary": "List calendar events",
                "responses": {"200": {"description": "Calendar events"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["calendar-events"],
                "summary": "Create a calendar event",
                "responses": {"201": {"description": "Event created"}}
            }
        },
        "/calendarEvents/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["calendar-events"],
                "summary": "Get calendar event by ID",
                "responses": {"200": {"description": "Event details"}, "404": {"description": "Event not found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["calendar-events"],
                "summary": "Update calendar event",
                "responses": {"200": {"description": "Updated event"}, "404": {"description": "Event not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["calendar-events"],
                "summary": "Delete calendar event",
                "responses": {"204": {"description": "Event deleted"}, "404": {"description": "Event not found"}}
            }
        },
        "/pomodoroTasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["pomodoro-tasks"],
                "summary": "List pomodoro tasks",
                "responses": {"200": {"description": "Pomodoro tasks"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["pomodoro-tasks"],
                "summary": "Create a pomodoro task",
                "responses": {"201": {"description": "Task created"}}
            }
        },
        "/pomodoroTasks/completed": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["pomodoro-tasks"],
                "summary": "List completed pomodoro tasks",
                "responses": {"200": {"description": "Completed pomodoro tasks"}}
            }
        },
        "/pomodoroTasks/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["pomodoro-tasks"],
                "summary": "Update pomodoro task",
                "responses": {"200": {"description": "Updated task"}, "404": {"description": "Task not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["pomodoro-tasks"],
                "summary": "Delete pomodoro task",
                "responses": {"204": {"description": "Task deleted"}, "404": {"description": "Task not found"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Vita API",
	Description:      "Vita is a personal productivity dashboard backend covering tasks, pomodoro tasks, notes and calendar events for registered users.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
