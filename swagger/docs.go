// Package swagger holds the OpenAPI document of the gateway, kept in step with the handler annotations.
package swagger

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
		"/manage/health": {
			"get": {
				"tags": [
					"Manage"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "string"
						}
					}
				},
				"summary": "Health check",
				"produces": [
					"text/plain"
				]
			}
		},
		"/api/v1/facilities/{type}": {
			"get": {
				"tags": [
					"Facility"
				],
				"parameters": [
					{
						"enum": [
							"Cubicle",
							"Laboratory",
							"Projector",
							"Restaurant",
							"VipRoom",
							"MeetingRoom"
						],
						"type": "string",
						"description": "Facility type",
						"name": "type",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/model.Facility"
							}
						}
					},
					"400": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"502": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"summary": "List the units of a facility type",
				"produces": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"Facility"
				],
				"parameters": [
					{
						"enum": [
							"Cubicle",
							"Laboratory",
							"Projector",
							"Restaurant",
							"VipRoom",
							"MeetingRoom"
						],
						"type": "string",
						"description": "Facility type",
						"name": "type",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"$ref": "#/definitions/model.Facility"
						},
						"description": "Unit",
						"name": "facility",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.Facility"
						}
					},
					"422": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"summary": "Create a facility unit",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/v1/facilities/{type}/{id}": {
			"get": {
				"tags": [
					"Facility"
				],
				"parameters": [
					{
						"enum": [
							"Cubicle",
							"Laboratory",
							"Projector",
							"Restaurant",
							"VipRoom",
							"MeetingRoom"
						],
						"type": "string",
						"description": "Facility type",
						"name": "type",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Unit id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.Facility"
						}
					},
					"404": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"summary": "Get a facility unit",
				"produces": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"Facility"
				],
				"parameters": [
					{
						"enum": [
							"Cubicle",
							"Laboratory",
							"Projector",
							"Restaurant",
							"VipRoom",
							"MeetingRoom"
						],
						"type": "string",
						"description": "Facility type",
						"name": "type",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Unit id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"$ref": "#/definitions/model.Facility"
						},
						"description": "Unit",
						"name": "facility",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.Facility"
						}
					}
				},
				"summary": "Update a facility unit",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"Facility"
				],
				"parameters": [
					{
						"enum": [
							"Cubicle",
							"Laboratory",
							"Projector",
							"Restaurant",
							"VipRoom",
							"MeetingRoom"
						],
						"type": "string",
						"description": "Facility type",
						"name": "type",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Unit id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"summary": "Delete a facility unit"
			}
		},
		"/api/v1/students/{studentId}": {
			"get": {
				"tags": [
					"Student"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Matricula",
						"name": "studentId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.Person"
						}
					},
					"404": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"summary": "Look a student up by matricula",
				"produces": [
					"application/json"
				]
			}
		},
		"/api/v1/reservations": {
			"get": {
				"tags": [
					"Reservation"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Matricula",
						"name": "X-Student-Id",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/model.Reservation"
							}
						}
					},
					"401": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"summary": "Reservation history of the caller",
				"produces": [
					"application/json"
				]
			}
		},
		"/api/v1/reservations/{id}": {
			"get": {
				"tags": [
					"Reservation"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Reservation id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.Reservation"
						}
					}
				},
				"summary": "Get a reservation",
				"produces": [
					"application/json"
				]
			}
		},
		"/api/v1/reservations/{id}/cancel": {
			"post": {
				"tags": [
					"Reservation"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Reservation id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.Reservation"
						}
					},
					"409": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"summary": "Cancel a submitted reservation",
				"produces": [
					"application/json"
				]
			}
		},
		"/api/v1/sessions": {
			"post": {
				"tags": [
					"Session"
				],
				"parameters": [
					{
						"schema": {
							"$ref": "#/definitions/model.OpenSessionRequest"
						},
						"description": "Facility type and initiator",
						"name": "request",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.DraftState"
						}
					},
					"404": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"summary": "Open a reservation flow",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/v1/sessions/{sessionId}": {
			"get": {
				"tags": [
					"Session"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Session id",
						"name": "sessionId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.DraftState"
						}
					},
					"404": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"summary": "Current state of a reservation flow",
				"description": "Served from the state after the last finished operation, so polling never waits on an in-flight submit.",
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"Session"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Session id",
						"name": "sessionId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"summary": "Abandon a reservation flow"
			}
		},
		"/api/v1/sessions/{sessionId}/members": {
			"post": {
				"tags": [
					"Session"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Session id",
						"name": "sessionId",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"$ref": "#/definitions/model.AddMemberRequest"
						},
						"description": "Member",
						"name": "request",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.DraftState"
						}
					},
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.DraftState"
						}
					}
				},
				"summary": "Add a member",
				"description": "201 when the student joined, 200 when already a member.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/v1/sessions/{sessionId}/members/{studentId}": {
			"delete": {
				"tags": [
					"Session"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Session id",
						"name": "sessionId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Matricula",
						"name": "studentId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.DraftState"
						}
					}
				},
				"summary": "Remove a member",
				"produces": [
					"application/json"
				]
			}
		},
		"/api/v1/sessions/{sessionId}/hours": {
			"put": {
				"tags": [
					"Session"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Session id",
						"name": "sessionId",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"$ref": "#/definitions/model.SetHoursRequest"
						},
						"description": "Hours",
						"name": "request",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.DraftState"
						}
					},
					"422": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"summary": "Set the number of hours",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/v1/sessions/{sessionId}/schedule": {
			"put": {
				"tags": [
					"Session"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Session id",
						"name": "sessionId",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"$ref": "#/definitions/model.SetScheduleRequest"
						},
						"description": "Schedule",
						"name": "request",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.DraftState"
						}
					},
					"422": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"summary": "Set date and time range",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/v1/sessions/{sessionId}/facility": {
			"put": {
				"tags": [
					"Session"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Session id",
						"name": "sessionId",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"$ref": "#/definitions/model.SelectFacilityRequest"
						},
						"description": "Unit",
						"name": "request",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.DraftState"
						}
					}
				},
				"summary": "Pick the facility unit",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/api/v1/sessions/{sessionId}/conflicts": {
			"get": {
				"tags": [
					"Session"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Session id",
						"name": "sessionId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.ConflictsResponse"
						}
					}
				},
				"summary": "Overlapping reservations of the chosen unit and slot",
				"produces": [
					"application/json"
				]
			}
		},
		"/api/v1/sessions/{sessionId}/submit": {
			"post": {
				"tags": [
					"Session"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Session id",
						"name": "sessionId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.SubmitResponse"
						}
					},
					"409": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"502": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"summary": "Submit the reservation",
				"produces": [
					"application/json"
				]
			}
		},
		"/api/v1/sessions/{sessionId}/refresh": {
			"post": {
				"tags": [
					"Session"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Session id",
						"name": "sessionId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/model.DraftState"
						}
					},
					"409": {
						"description": "",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"summary": "Pull the remote status of the submitted reservation",
				"produces": [
					"application/json"
				]
			}
		}
	},
	"definitions": {
		"model.Facility": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"location": {
					"type": "string"
				},
				"capacity": {
					"type": "integer",
					"minimum": 0
				},
				"available": {
					"type": "boolean"
				}
			},
			"required": [
				"name"
			]
		},
		"model.Person": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"studentId": {
					"type": "string"
				}
			}
		},
		"model.Reservation": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"code": {
					"type": "integer"
				},
				"facilityType": {
					"type": "string"
				},
				"facilityId": {
					"type": "integer"
				},
				"date": {
					"type": "string",
					"example": "2025-06-12"
				},
				"startTime": {
					"type": "string",
					"example": "09:00"
				},
				"endTime": {
					"type": "string",
					"example": "11:00"
				},
				"hours": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"members": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Person"
					}
				}
			}
		},
		"model.ReservationRequest": {
			"type": "object",
			"properties": {
				"facilityType": {
					"type": "string"
				},
				"facilityId": {
					"type": "integer"
				},
				"date": {
					"type": "string"
				},
				"startTime": {
					"type": "string"
				},
				"endTime": {
					"type": "string"
				},
				"hours": {
					"type": "string"
				},
				"members": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Person"
					}
				},
				"reservationCode": {
					"type": "integer"
				},
				"status": {
					"type": "string"
				},
				"reservationId": {
					"type": "integer"
				}
			}
		},
		"model.DraftState": {
			"type": "object",
			"properties": {
				"sessionId": {
					"type": "string"
				},
				"reservation": {
					"$ref": "#/definitions/model.ReservationRequest"
				},
				"requiredMembers": {
					"type": "integer"
				},
				"remainingSlots": {
					"type": "integer"
				},
				"scheduleSet": {
					"type": "boolean"
				},
				"lastError": {
					"type": "string"
				}
			}
		},
		"model.OpenSessionRequest": {
			"type": "object",
			"properties": {
				"facilityType": {
					"type": "string",
					"enum": [
						"Cubicle",
						"Laboratory",
						"Projector",
						"Restaurant",
						"VipRoom",
						"MeetingRoom"
					]
				},
				"studentId": {
					"type": "string"
				}
			},
			"required": [
				"facilityType",
				"studentId"
			]
		},
		"model.AddMemberRequest": {
			"type": "object",
			"properties": {
				"studentId": {
					"type": "string"
				}
			},
			"required": [
				"studentId"
			]
		},
		"model.SetHoursRequest": {
			"type": "object",
			"properties": {
				"hours": {
					"type": "string",
					"example": "2"
				}
			}
		},
		"model.SetScheduleRequest": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string",
					"example": "2025-06-12"
				},
				"startTime": {
					"type": "string",
					"example": "09:00"
				},
				"endTime": {
					"type": "string",
					"example": "11:00"
				}
			},
			"required": [
				"date"
			]
		},
		"model.SelectFacilityRequest": {
			"type": "object",
			"properties": {
				"facilityId": {
					"type": "integer"
				}
			},
			"required": [
				"facilityId"
			]
		},
		"model.SubmitResponse": {
			"type": "object",
			"properties": {
				"reservationCode": {
					"type": "integer"
				},
				"reservation": {
					"$ref": "#/definitions/model.ReservationRequest"
				}
			}
		},
		"model.ConflictsResponse": {
			"type": "object",
			"properties": {
				"available": {
					"type": "boolean"
				},
				"conflicts": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Reservation"
					}
				}
			}
		}
	}
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "UReserve gateway",
	Description:      "Reservation flows for university facilities on top of the UReserve API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
