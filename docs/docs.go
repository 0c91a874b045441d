// Package docs registers the OpenAPI document served under /swagger/.
// Keep it in step with the @ annotations on the HTTP handlers.
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
		"/health": {
			"get": {
				"summary": "Health check",
				"tags": [
					"system"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/display": {
			"get": {
				"summary": "Current screen contents",
				"tags": [
					"display"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.DisplaySnapshot"
						}
					}
				}
			}
		},
		"/api/v1/display.png": {
			"get": {
				"summary": "Rendered screen frame",
				"tags": [
					"display"
				],
				"produces": [
					"image/png"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/touch": {
			"post": {
				"summary": "Touch the screen",
				"tags": [
					"display"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"description": "Touch target",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.touchRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/panel/next": {
			"post": {
				"summary": "Advance to the next panel",
				"tags": [
					"display"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/api/v1/refresh": {
			"post": {
				"summary": "Refresh the weather now",
				"tags": [
					"display"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.DisplaySnapshot"
						}
					},
					"502": {
						"description": "error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"504": {
						"description": "error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/reset": {
			"post": {
				"summary": "Factory reset",
				"tags": [
					"system"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"202": {
						"description": "Accepted",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/settings": {
			"get": {
				"summary": "Current preferences",
				"tags": [
					"settings"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Preferences"
						}
					}
				}
			},
			"put": {
				"summary": "Update preferences",
				"tags": [
					"settings"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"description": "Fields to change",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.PreferencesPatch"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Preferences"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/settings/brightness": {
			"put": {
				"summary": "Set backlight brightness",
				"tags": [
					"settings"
				],
				"description": "Applies and persists immediately, like the brightness slider.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"description": "Brightness",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.brightnessRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/locations": {
			"get": {
				"summary": "Search places by name",
				"tags": [
					"location"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Place name",
						"name": "q",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"502": {
						"description": "error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/location": {
			"post": {
				"summary": "Use a search result as the display location",
				"tags": [
					"location"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"description": "Chosen place",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.locationRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Location"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/transit": {
			"get": {
				"summary": "Transit stops and arrivals",
				"tags": [
					"transit"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.transitResponse"
						}
					}
				}
			},
			"put": {
				"summary": "Configure transit stops",
				"tags": [
					"transit"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"description": "Up to 3 bus stops and a tube station",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.transitRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.transitResponse"
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/logs": {
			"get": {
				"summary": "Display event log",
				"tags": [
					"logs"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "RFC3339 or YYYY-MM-DD",
						"name": "from",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "RFC3339 or YYYY-MM-DD",
						"name": "to",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "WEATHER_REFRESH, WEATHER_FAILED, TRANSIT_REFRESH, SETTINGS_SAVED, LOCATION_CHANGED, NIGHT_MODE, RESET",
						"name": "type",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/ws": {
			"get": {
				"summary": "Snapshot stream (WebSocket)",
				"tags": [
					"display"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Poll interval, e.g. 500ms (max 10s)",
						"name": "interval",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "Poll interval in milliseconds",
						"name": "interval_ms",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"101": {
						"description": "Switching Protocols"
					}
				}
			}
		}
	},
	"definitions": {
		"handlers.brightnessRequest": {
			"type": "object",
			"properties": {
				"brightness": {
					"type": "integer",
					"maximum": 255,
					"minimum": 1,
					"example": 128
				}
			},
			"required": [
				"brightness"
			]
		},
		"handlers.touchRequest": {
			"type": "object",
			"properties": {
				"target": {
					"type": "string",
					"enum": [
						"panel",
						"screen"
					],
					"example": "panel"
				}
			},
			"required": [
				"target"
			]
		},
		"handlers.locationRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"admin1": {
					"type": "string"
				},
				"country_code": {
					"type": "string"
				},
				"latitude": {
					"type": "number"
				},
				"longitude": {
					"type": "number"
				}
			},
			"required": [
				"name",
				"latitude",
				"longitude"
			]
		},
		"handlers.transitRequest": {
			"type": "object",
			"properties": {
				"bus_stop_ids": {
					"type": "array",
					"maxItems": 3,
					"items": {
						"type": "string"
					}
				},
				"tube_station_id": {
					"type": "string"
				}
			}
		},
		"handlers.transitResponse": {
			"type": "object",
			"properties": {
				"config": {
					"$ref": "#/definitions/models.TransitConfig"
				},
				"enabled": {
					"type": "boolean"
				},
				"bus_rows": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"tube_rows": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"models.Location": {
			"type": "object",
			"properties": {
				"latitude": {
					"type": "string"
				},
				"longitude": {
					"type": "string"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"models.TransitConfig": {
			"type": "object",
			"properties": {
				"bus_stop_ids": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"tube_station_id": {
					"type": "string"
				}
			}
		},
		"models.Preferences": {
			"type": "object",
			"properties": {
				"use_fahrenheit": {
					"type": "boolean"
				},
				"use_24_hour": {
					"type": "boolean"
				},
				"use_night_mode": {
					"type": "boolean"
				},
				"brightness": {
					"type": "integer"
				},
				"language": {
					"type": "string"
				},
				"auto_rotate": {
					"type": "boolean"
				},
				"auto_rotate_interval_ms": {
					"type": "integer"
				}
			}
		},
		"models.PreferencesPatch": {
			"type": "object",
			"properties": {
				"use_fahrenheit": {
					"type": "boolean"
				},
				"use_24_hour": {
					"type": "boolean"
				},
				"use_night_mode": {
					"type": "boolean"
				},
				"brightness": {
					"type": "integer"
				},
				"language": {
					"type": "string"
				},
				"auto_rotate": {
					"type": "boolean"
				},
				"auto_rotate_interval_ms": {
					"type": "integer"
				}
			}
		},
		"models.DisplaySnapshot": {
			"type": "object",
			"properties": {
				"panel": {
					"type": "string"
				},
				"panel_title": {
					"type": "string"
				},
				"clock": {
					"type": "string"
				},
				"night_state": {
					"type": "string"
				},
				"backlight": {
					"type": "integer"
				},
				"location": {
					"$ref": "#/definitions/models.Location"
				},
				"preferences": {
					"$ref": "#/definitions/models.Preferences"
				},
				"transit": {
					"$ref": "#/definitions/models.TransitConfig"
				},
				"has_weather": {
					"type": "boolean"
				},
				"current_temp": {
					"type": "string"
				},
				"feels_like": {
					"type": "string"
				},
				"current_image": {
					"type": "string"
				},
				"sunrise": {
					"type": "string"
				},
				"sunset": {
					"type": "string"
				},
				"daily": {
					"type": "array",
					"items": {
						"type": "object"
					}
				},
				"hourly": {
					"type": "array",
					"items": {
						"type": "object"
					}
				},
				"weather_error": {
					"type": "string"
				},
				"transit_enabled": {
					"type": "boolean"
				},
				"bus_rows": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"tube_rows": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"updated_at": {
					"type": "string"
				}
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
	Title:            "Aura display API",
	Description:      "Remote control for the weather and transit display.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
