package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Team Pulse API",
        "description": "Employee feedback collection, team KPIs and manager reports",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "in": "header",
            "name": "Authorization"
        }
    },
    "tags": [
        {
            "name": "Survey",
            "description": "Questionnaire definition"
        },
        {
            "name": "Feedback",
            "description": "Survey submissions"
        },
        {
            "name": "KPIs",
            "description": "Team aggregates"
        },
        {
            "name": "Reports",
            "description": "Manager reports and sentiment"
        },
        {
            "name": "Profile",
            "description": "Caller profile"
        }
    ],
    "paths": {
        "/survey": {
            "get": {
                "tags": [
                    "Survey"
                ],
                "summary": "Survey questions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/me": {
            "get": {
                "tags": [
                    "Profile"
                ],
                "summary": "Current user profile",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Team has no feedback",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Profile"
                ],
                "summary": "Update current user profile",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateProfileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/feedback": {
            "post": {
                "tags": [
                    "Feedback"
                ],
                "summary": "Submit survey feedback",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SubmitFeedbackRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/feedback/list": {
            "post": {
                "tags": [
                    "Feedback"
                ],
                "summary": "List a team's feedback",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/TeamRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Team has no feedback",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/teams/{team}/feedback": {
            "get": {
                "tags": [
                    "Feedback"
                ],
                "summary": "List a team's feedback",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "team",
                        "type": "integer",
                        "required": true,
                        "description": "Team number"
                    },
                    {
                        "in": "query",
                        "name": "page",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "page_size",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Team has no feedback",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/kpis": {
            "post": {
                "tags": [
                    "KPIs"
                ],
                "summary": "Team KPIs",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/KPIRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "429": {
                        "description": "Rate limited",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Upstream or malformed report",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/teams/{team}/kpis/export": {
            "get": {
                "tags": [
                    "KPIs"
                ],
                "summary": "Export team KPIs",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "in": "path",
                        "name": "team",
                        "type": "integer",
                        "required": true,
                        "description": "Team number"
                    },
                    {
                        "in": "query",
                        "name": "format",
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/reports/summary": {
            "post": {
                "tags": [
                    "Reports"
                ],
                "summary": "Manager report",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/TeamRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Team has no feedback",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "429": {
                        "description": "Rate limited",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Upstream or malformed report",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/sentiment": {
            "post": {
                "tags": [
                    "Reports"
                ],
                "summary": "Sentiment counts",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SentimentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "502": {
                        "description": "Upstream or malformed report",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "SubmitFeedbackRequest": {
            "type": "object",
            "required": [
                "teamNumber",
                "workSatisfaction",
                "workLifeBalance",
                "workSupport",
                "interDepartmentCommunication",
                "workRecognition",
                "toolsSatisfaction",
                "cultureAlignment",
                "careerGrowthSatisfaction",
                "trainingPreference",
                "developmentOpportunities",
                "learningPreference",
                "weakestSkill",
                "recognitionSatisfaction",
                "feedbackFrequency",
                "recommendCompany"
            ],
            "properties": {
                "teamNumber": {
                    "type": "integer"
                },
                "workSatisfaction": {
                    "type": "string"
                },
                "workLifeBalance": {
                    "type": "string"
                },
                "workSupport": {
                    "type": "string"
                },
                "interDepartmentCommunication": {
                    "type": "string"
                },
                "workRecognition": {
                    "type": "string"
                },
                "toolsSatisfaction": {
                    "type": "string"
                },
                "cultureAlignment": {
                    "type": "string"
                },
                "careerGrowthSatisfaction": {
                    "type": "string"
                },
                "trainingPreference": {
                    "type": "string"
                },
                "developmentOpportunities": {
                    "type": "string"
                },
                "learningPreference": {
                    "type": "string"
                },
                "weakestSkill": {
                    "type": "string"
                },
                "recognitionSatisfaction": {
                    "type": "string"
                },
                "feedbackFrequency": {
                    "type": "string"
                },
                "recommendCompany": {
                    "type": "string"
                },
                "overallWorkLifeBalance": {
                    "type": "string"
                },
                "teamWorkingRelationship": {
                    "type": "string"
                },
                "enjoymentOfWork": {
                    "type": "string"
                },
                "collaborationChallenges": {
                    "type": "string"
                },
                "workRelatedStressors": {
                    "type": "string"
                },
                "supportWellBeing": {
                    "type": "string"
                },
                "improveExperience": {
                    "type": "string"
                }
            }
        },
        "TeamRequest": {
            "type": "object",
            "required": [
                "teamNumber"
            ],
            "properties": {
                "teamNumber": {
                    "type": "integer"
                }
            }
        },
        "KPIRequest": {
            "type": "object",
            "required": [
                "teamNumber"
            ],
            "properties": {
                "teamNumber": {
                    "type": "integer"
                },
                "includeSuggestions": {
                    "type": "boolean"
                }
            }
        },
        "SentimentRequest": {
            "type": "object",
            "required": [
                "teamNumber"
            ],
            "properties": {
                "teamNumber": {
                    "type": "integer"
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "teamNumber": {
                    "type": "integer"
                },
                "department": {
                    "type": "string"
                },
                "existingSkills": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                },
                "details": {
                    "type": "object"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "meta": {
                    "type": "object"
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
