// Package docs registra la especificación Swagger del backend de referencia.
// Regenerar con: swag init -g cmd/api/main.go
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
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Iniciar sesión",
                "parameters": [
                    {"description": "Credenciales", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.LoginInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.AuthResponse"}},
                    "401": {"description": "credenciales inválidas", "schema": {"type": "object"}}
                }
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Crear cuenta",
                "parameters": [
                    {"description": "Alta", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.RegisterInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/users.AuthResponse"}},
                    "409": {"description": "email ya registrado", "schema": {"type": "object"}},
                    "422": {"description": "validación", "schema": {"type": "object"}}
                }
            }
        },
        "/pets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas del usuario",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.Pet"}}},
                    "401": {"description": "unauthenticated", "schema": {"type": "object"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Crear mascota",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true},
                    {"description": "Perfil; id y ownerId se ignoran", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.Pet"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.Pet"}},
                    "422": {"description": "validación", "schema": {"type": "object"}}
                }
            }
        },
        "/pets/{petID}/health-records": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Listar registros de salud",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true},
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/health.Record"}}},
                    "403": {"description": "forbidden", "schema": {"type": "object"}},
                    "404": {"description": "pet not found", "schema": {"type": "object"}}
                }
            }
        },
        "/pets/{petID}/share": {
            "post": {
                "produces": ["application/json"],
                "tags": ["sharing"],
                "summary": "Generar link público",
                "parameters": [
                    {"type": "string", "description": "Bearer token", "name": "Authorization", "in": "header", "required": true},
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/sharing.ShareResponse"}},
                    "403": {"description": "forbidden", "schema": {"type": "object"}}
                }
            }
        }
    },
    "definitions": {
        "users.LoginInput": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "users.RegisterInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "password_confirmation": {"type": "string"}
            }
        },
        "users.User": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}}
        },
        "users.AuthResponse": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/users.User"}, "token": {"type": "string"}}
        },
        "pets.WeightPoint": {
            "type": "object",
            "properties": {"date": {"type": "string"}, "weight": {"type": "number"}}
        },
        "pets.Pet": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "ownerId": {"type": "string"},
                "name": {"type": "string"},
                "species": {"type": "string", "enum": ["dog", "cat"]},
                "breed": {"type": "string"},
                "dob": {"type": "string"},
                "weight": {"type": "number"},
                "weightHistory": {"type": "array", "items": {"$ref": "#/definitions/pets.WeightPoint"}},
                "notes": {"type": "string"},
                "avatar": {"type": "string"}
            }
        },
        "health.Record": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "petId": {"type": "string"},
                "type": {"type": "string", "enum": ["vaccination", "medication", "vet_visit", "note"]},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "date": {"type": "string"}
            }
        },
        "sharing.ShareResponse": {
            "type": "object",
            "properties": {"url": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Wellness API",
	Description:      "Backend de referencia del cliente de bienestar de mascotas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
