// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/main.go -o docs
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
        "/api/v1/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users, newest first",
                "parameters": [
                    {"type": "integer", "description": "page number, default 1", "name": "page", "in": "query"},
                    {"type": "integer", "description": "page size 1..100, default 15", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.UserListEnvelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "User payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.createUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.UserEnvelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            }
        },
        "/api/v1/users/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Free-text search over name and email",
                "parameters": [
                    {"type": "string", "description": "search text", "name": "q", "in": "query", "required": true},
                    {"type": "integer", "description": "max hits 1..50, default 10", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.UserListEnvelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            }
        },
        "/api/v1/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [
                    {"type": "string", "description": "user id (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.UserEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Replace a user's name and email",
                "parameters": [
                    {"type": "string", "description": "user id (UUID)", "name": "id", "in": "path", "required": true},
                    {"description": "Profile", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.updateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.UserEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "string", "description": "user id (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}}
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe, checks every backing service",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "application.UserDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "2f1c7a1e-8a5b-4f8e-9a57-3a1f0b6c2d4e"},
                "name": {"type": "string", "example": "John Doe"},
                "email": {"type": "string", "example": "john@example.com"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "handlers.createUserRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "name": {"type": "string", "minLength": 3, "maxLength": 255, "example": "John Doe"},
                "email": {"type": "string", "maxLength": 255, "example": "john@example.com"},
                "password": {"type": "string", "minLength": 6, "maxLength": 72, "example": "password123"}
            }
        },
        "handlers.updateUserRequest": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "name": {"type": "string", "minLength": 3, "maxLength": 255, "example": "John Updated"},
                "email": {"type": "string", "maxLength": 255, "example": "john.updated@example.com"}
            }
        },
        "response.PageMeta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "per_page": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "response.ErrorEnvelope": {
            "type": "object",
            "properties": {
                "status": {"type": "integer"},
                "timestamp": {"type": "string", "format": "date-time"},
                "request_id": {"type": "string"},
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {},
                "error": {}
            }
        },
        "response.UserEnvelope": {
            "type": "object",
            "properties": {
                "status": {"type": "integer"},
                "timestamp": {"type": "string", "format": "date-time"},
                "request_id": {"type": "string"},
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"$ref": "#/definitions/application.UserDTO"}
            }
        },
        "response.UserListEnvelope": {
            "type": "object",
            "properties": {
                "status": {"type": "integer"},
                "timestamp": {"type": "string", "format": "date-time"},
                "request_id": {"type": "string"},
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/application.UserDTO"}},
                "meta": {"$ref": "#/definitions/response.PageMeta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "User Management API",
	Description:      "CRUD over users with unique emails and hashed passwords.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
