package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Table Tennis Lesson Tracker API",
        "description": "Records table-tennis lesson sessions against remotely loaded student/teacher rosters",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Lessons", "description": "Lesson ledger: record, delete, filter, export"},
        {"name": "Roster", "description": "Read-only student/teacher reference rosters"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check (roster load settled)",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Roster still loading"}
                }
            }
        },
        "/api/v1/lessons": {
            "get": {
                "tags": ["Lessons"],
                "summary": "List lesson records matching the active filter",
                "parameters": [
                    {"name": "student", "in": "query", "type": "string", "description": "Student name or _all"},
                    {"name": "teacher", "in": "query", "type": "string", "description": "Teacher name or _all"},
                    {"name": "date", "in": "query", "type": "string", "description": "Day filter, yyyy-MM-dd"}
                ],
                "responses": {
                    "200": {"description": "Matching records in insertion order", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Lessons"],
                "summary": "Record a lesson",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateLessonRequest"}}
                ],
                "responses": {
                    "201": {"description": "Record created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "Roster still loading"}
                }
            }
        },
        "/api/v1/lessons/{id}": {
            "delete": {
                "tags": ["Lessons"],
                "summary": "Delete a lesson record",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Removed (or id unknown); meta carries the deleted notice"}
                }
            }
        },
        "/api/v1/lessons/export": {
            "get": {
                "tags": ["Lessons"],
                "summary": "Download the filtered ledger as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "description": "csv (default) or pdf"},
                    {"name": "student", "in": "query", "type": "string"},
                    {"name": "teacher", "in": "query", "type": "string"},
                    {"name": "date", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/api/v1/roster/students": {
            "get": {
                "tags": ["Roster"],
                "summary": "List the student roster",
                "responses": {
                    "200": {"description": "Students in load order", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/roster/teachers": {
            "get": {
                "tags": ["Roster"],
                "summary": "List the teacher roster",
                "responses": {
                    "200": {"description": "Teachers in load order", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/roster/status": {
            "get": {
                "tags": ["Roster"],
                "summary": "Report roster load state",
                "responses": {
                    "200": {"description": "Load state with optional failure notice", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/roster/reload": {
            "post": {
                "tags": ["Roster"],
                "summary": "Re-run the roster load",
                "responses": {
                    "200": {"description": "Reloaded", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "Load failed"}
                }
            }
        }
    },
    "definitions": {
        "CreateLessonRequest": {
            "type": "object",
            "required": ["student_name", "teacher_name", "date"],
            "properties": {
                "student_name": {"type": "string"},
                "teacher_name": {"type": "string"},
                "hours": {"type": "integer", "minimum": 0},
                "minutes": {"type": "integer", "minimum": 0, "maximum": 59},
                "date": {"type": "string", "example": "2024-01-01"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
