package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Theater Scheduler API",
        "description": "Schedule solving and load-balanced role assignment for multi-stage theater runs.",
        "version": "1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/scenarios": {
            "post": {
                "tags": ["Scenario"],
                "summary": "Create a scenario",
                "responses": {
                    "201": {"description": "Created"}
                }
            }
        },
        "/scenarios/{id}/solve": {
            "post": {
                "tags": ["Scenario"],
                "summary": "Solve a scenario's schedule and role assignments",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/scenarios/{id}/status": {
            "get": {
                "tags": ["Scenario"],
                "summary": "Get a scenario's lifecycle status",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/scenarios/{id}/schedule": {
            "get": {
                "tags": ["Scenario"],
                "summary": "Get a solved scenario's schedule and assignments",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/scenarios/{id}/gantt": {
            "get": {
                "tags": ["Scenario"],
                "summary": "Get a solved scenario's Gantt visualization tasks",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/scenarios/{id}/export": {
            "post": {
                "tags": ["Export"],
                "summary": "Queue a schedule export render",
                "responses": {
                    "202": {"description": "Accepted"}
                }
            }
        },
        "/export/{jobId}/status": {
            "get": {
                "tags": ["Export"],
                "summary": "Get the status of a queued schedule export",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/export/{token}": {
            "get": {
                "tags": ["Export"],
                "summary": "Download a rendered export via signed token",
                "responses": {
                    "200": {"description": "OK"}
                }
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
