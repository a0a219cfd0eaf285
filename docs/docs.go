// Package docs registers the OpenAPI document served under /swagger/.
// Keep it in step with the godoc annotations in internal/delivery/http/controllers.
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
        "/activities": {
            "get": {
                "description": "Returns every activity keyed by name, including its current roster.",
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "List all activities",
                "responses": {
                    "200": {
                        "description": "data maps activity name to activity",
                        "schema": {"$ref": "#/definitions/controllers.ListActivitiesSuccessResponse"}
                    }
                }
            }
        },
        "/activities/{activityName}": {
            "get": {
                "description": "Returns description, schedule, capacity and roster of the named activity.",
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "Get one activity",
                "parameters": [
                    {"type": "string", "description": "Activity name", "name": "activityName", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.GetActivitySuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/activities/{activityName}/roster": {
            "get": {
                "description": "Renders the participants list in the requested format: list, details, comma_space, csv, tsv, html, xml, yaml, markdown, plaintext, json_string, json_object.",
                "produces": ["application/json"],
                "tags": ["projections"],
                "summary": "Render an activity's roster",
                "parameters": [
                    {"type": "string", "description": "Activity name", "name": "activityName", "in": "path", "required": true},
                    {"type": "string", "description": "Roster format (default list)", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/activities/{activityName}/signup": {
            "post": {
                "description": "Adds the email to the activity's roster. Checks run in order: activity exists, email not already registered, roster not full.",
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "Sign up a student for an activity",
                "parameters": [
                    {"type": "string", "description": "Activity name", "name": "activityName", "in": "path", "required": true},
                    {"type": "string", "description": "Student email", "name": "email", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.SignupSuccessResponse"}},
                    "400": {"description": "error.code: bad_request, already_registered or capacity_exceeded", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/activities/{activityName}/signups": {
            "get": {
                "description": "Returns the signup audit log for the activity, oldest first. Empty when no log database is configured.",
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "List recorded signups for an activity",
                "parameters": [
                    {"type": "string", "description": "Activity name", "name": "activityName", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListSignupsSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/activities/{activityName}/{projection}": {
            "get": {
                "description": "Returns one field or one rendering of the roster. The value is reported under the projection name; \"participants\" returns the bare list.",
                "produces": ["application/json"],
                "tags": ["projections"],
                "summary": "Get a derived view of an activity",
                "parameters": [
                    {"type": "string", "description": "Activity name", "name": "activityName", "in": "path", "required": true},
                    {"type": "string", "description": "Projection name", "name": "projection", "in": "path", "required": true},
                    {"type": "string", "description": "Student email (is_participant only)", "name": "email", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.GetActivitySuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.Activity"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListActivitiesSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "object", "additionalProperties": {"$ref": "#/definitions/domain.Activity"}},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListSignupsSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.SignupLogEntry"}},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.SignupSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.SignupResult"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "domain.Activity": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "max_participants": {"type": "integer"},
                "participants": {"type": "array", "items": {"type": "string"}},
                "schedule": {"type": "string"}
            }
        },
        "domain.SignupLogEntry": {
            "type": "object",
            "properties": {
                "activity_name": {"type": "string"},
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"}
            }
        },
        "domain.SignupResult": {
            "type": "object",
            "properties": {
                "activity": {"type": "string"},
                "email": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Mergington High School Activities API",
	Description:      "View and sign up for extracurricular activities at Mergington High School.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
