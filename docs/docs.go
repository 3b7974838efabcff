// Package docs registers the swagger description served under /swagger.
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
        "/api/v1/algorithms": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Simulations"],
                "summary": "List scheduling algorithms",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/rest.SuccessResponse-rest_ListAlgorithmsResponse"}
                    }
                }
            }
        },
        "/api/v1/auth/token": {
            "post": {
                "description": "Verify the client's public key and return a signed JWT.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Issue an API token",
                "parameters": [
                    {
                        "description": "Client id and public key",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.TokenRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/rest.SuccessResponse-rest_TokenResponse"}
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/api/v1/simulations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Simulations"],
                "summary": "List stored simulations",
                "parameters": [
                    {"type": "string", "description": "Comma separated algorithm names", "name": "algorithm", "in": "query"},
                    {"type": "string", "description": "Workload fingerprint", "name": "fingerprint", "in": "query"},
                    {"type": "integer", "description": "Maximum number of simulations", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/rest.SuccessResponse-rest_ListSimulationsResponse"}
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Schedule the given processes with one algorithm and store the outcome.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Simulations"],
                "summary": "Run a simulation",
                "parameters": [
                    {
                        "description": "Workload and algorithm",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.RunSimulationRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/rest.SuccessResponse-rest_Simulation"}
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/api/v1/simulations/compare": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Run all five algorithms over one workload, best average waiting time first.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Simulations"],
                "summary": "Compare every algorithm",
                "parameters": [
                    {
                        "description": "Workload",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/rest.CompareAlgorithmsRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/rest.SuccessResponse-rest_ListSimulationsResponse"}
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/api/v1/simulations/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Simulations"],
                "summary": "Get a stored simulation",
                "parameters": [
                    {"type": "string", "description": "Simulation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/rest.SuccessResponse-rest_Simulation"}
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Simulations"],
                "summary": "Delete a stored simulation",
                "parameters": [
                    {"type": "string", "description": "Simulation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/rest.SuccessResponse-rest_EmptyResponse"}
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/api/v1/simulations/{id}/report": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["text/plain"],
                "tags": ["Simulations"],
                "summary": "Text report of a stored simulation",
                "parameters": [
                    {"type": "string", "description": "Simulation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "rest.Algorithm": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "name": {"type": "string"},
                "preemptive": {"type": "boolean"}
            }
        },
        "rest.CompareAlgorithmsRequest": {
            "type": "object",
            "properties": {
                "processes": {"type": "array", "items": {"$ref": "#/definitions/rest.Process"}},
                "quantum": {"type": "integer"}
            }
        },
        "rest.EmptyResponse": {"type": "object"},
        "rest.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "rest.ListAlgorithmsResponse": {
            "type": "object",
            "properties": {
                "algorithms": {"type": "array", "items": {"$ref": "#/definitions/rest.Algorithm"}}
            }
        },
        "rest.ListSimulationsResponse": {
            "type": "object",
            "properties": {
                "simulations": {"type": "array", "items": {"$ref": "#/definitions/rest.Simulation"}}
            }
        },
        "rest.Process": {
            "type": "object",
            "properties": {
                "arrival": {"type": "integer"},
                "burst": {"type": "integer"},
                "id": {"type": "string"},
                "priority": {"type": "integer"}
            }
        },
        "rest.RunSimulationRequest": {
            "type": "object",
            "properties": {
                "algorithm": {"type": "string"},
                "processes": {"type": "array", "items": {"$ref": "#/definitions/rest.Process"}},
                "quantum": {"type": "integer"}
            }
        },
        "rest.Simulation": {
            "type": "object",
            "properties": {
                "algorithm": {"type": "string"},
                "created_time": {"type": "integer"},
                "fingerprint": {"type": "string"},
                "id": {"type": "string"},
                "label": {"type": "string"},
                "processes": {"type": "array", "items": {"$ref": "#/definitions/scheduler.Process"}},
                "quantum": {"type": "integer"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/scheduler.Result"}},
                "slices": {"type": "array", "items": {"$ref": "#/definitions/scheduler.Slice"}},
                "summary": {"$ref": "#/definitions/scheduler.Summary"},
                "timeline": {"type": "array", "items": {"$ref": "#/definitions/scheduler.Bar"}}
            }
        },
        "rest.SuccessResponse-rest_EmptyResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/rest.EmptyResponse"},
                "success": {"type": "boolean"},
                "timestamp": {"type": "string"}
            }
        },
        "rest.SuccessResponse-rest_ListAlgorithmsResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/rest.ListAlgorithmsResponse"},
                "success": {"type": "boolean"},
                "timestamp": {"type": "string"}
            }
        },
        "rest.SuccessResponse-rest_ListSimulationsResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/rest.ListSimulationsResponse"},
                "success": {"type": "boolean"},
                "timestamp": {"type": "string"}
            }
        },
        "rest.SuccessResponse-rest_Simulation": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/rest.Simulation"},
                "success": {"type": "boolean"},
                "timestamp": {"type": "string"}
            }
        },
        "rest.SuccessResponse-rest_TokenResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/rest.TokenResponse"},
                "success": {"type": "boolean"},
                "timestamp": {"type": "string"}
            }
        },
        "rest.TokenRequest": {
            "type": "object",
            "properties": {
                "client_id": {"type": "string"},
                "public_key": {"description": "PEM encoded public key", "type": "string"}
            }
        },
        "rest.TokenResponse": {
            "type": "object",
            "properties": {
                "expired_at": {"type": "integer"},
                "token": {"type": "string"}
            }
        },
        "scheduler.Bar": {
            "type": "object",
            "properties": {
                "finish": {"type": "integer"},
                "id": {"type": "string"},
                "start": {"type": "integer"}
            }
        },
        "scheduler.Process": {
            "type": "object",
            "properties": {
                "arrival": {"type": "integer"},
                "burst": {"type": "integer"},
                "id": {"type": "string"},
                "priority": {"type": "integer"}
            }
        },
        "scheduler.Result": {
            "type": "object",
            "properties": {
                "arrival": {"type": "integer"},
                "burst": {"type": "integer"},
                "finish": {"type": "integer"},
                "id": {"type": "string"},
                "priority": {"type": "integer"},
                "start": {"type": "integer"},
                "turnaround": {"type": "integer"},
                "waiting": {"type": "integer"}
            }
        },
        "scheduler.Slice": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "start": {"type": "integer"},
                "stop": {"type": "integer"}
            }
        },
        "scheduler.Summary": {
            "type": "object",
            "properties": {
                "average_response": {"type": "number"},
                "average_turnaround": {"type": "number"},
                "average_waiting": {"type": "number"},
                "makespan": {"type": "integer"},
                "throughput": {"type": "number"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "schedsim API",
	Description:      "CPU scheduling simulator: FCFS, SJF, Priority, Round Robin and SRTF.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
