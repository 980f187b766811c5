// Package docs registers the Swagger document served at /swagger/doc.json.
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
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List all products",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductsSearchResult"}}}
            },
            "post": {
                "description": "Adds an Electronics, Grocery or Clothing product to the inventory",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Create a new product",
                "parameters": [{"description": "Product to add", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ProductRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductValidationError"}}},
                    "409": {"description": "Duplicate product ID", "schema": {"type": "string"}}
                }
            }
        },
        "/products/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Search products",
                "parameters": [
                    {"type": "string", "description": "Name contains", "name": "name", "in": "query"},
                    {"type": "string", "description": "Product type", "name": "type", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductsSearchResult"}}}
            }
        },
        "/products/import": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["import"],
                "summary": "Import products via CSV",
                "parameters": [{"type": "file", "description": "CSV file", "name": "file", "in": "formData", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ImportProductsResult"}},
                    "400": {"description": "Invalid file", "schema": {"type": "string"}}
                }
            }
        },
        "/products/expired/remove": {
            "post": {
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Remove expired grocery products",
                "parameters": [{"type": "string", "description": "Reference date (YYYY-MM-DD), defaults to today", "name": "date", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.RemoveExpiredResult"}},
                    "400": {"description": "Invalid date", "schema": {"type": "string"}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get product by ID",
                "parameters": [{"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "404": {"description": "Not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["products"],
                "summary": "Delete a product",
                "parameters": [{"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Deleted successfully"},
                    "404": {"description": "Not found", "schema": {"type": "string"}}
                }
            }
        },
        "/products/{id}/sell": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Sell units of a product",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "Units to sell", "name": "sale", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.QuantityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "400": {"description": "Invalid quantity", "schema": {"type": "string"}},
                    "404": {"description": "Not found", "schema": {"type": "string"}},
                    "409": {"description": "Not enough stock", "schema": {"type": "string"}}
                }
            }
        },
        "/products/{id}/restock": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Restock a product",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true},
                    {"description": "Units to add", "name": "restock", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.QuantityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductResponse"}},
                    "400": {"description": "Invalid quantity", "schema": {"type": "string"}},
                    "404": {"description": "Not found", "schema": {"type": "string"}}
                }
            }
        },
        "/inventory/value": {
            "get": {
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Total inventory value",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.TotalValueResponse"}}}
            }
        },
        "/inventory/save": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["storage"],
                "summary": "Save the inventory to a JSON file",
                "parameters": [{"description": "Target path relative to the data directory, defaults to the data file", "name": "file", "in": "body", "schema": {"$ref": "#/definitions/handlers.FileRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.SaveResult"}},
                    "400": {"description": "Path outside the data directory", "schema": {"type": "string"}},
                    "500": {"description": "Write failure", "schema": {"type": "string"}}
                }
            }
        },
        "/inventory/load": {
            "post": {
                "description": "Records with an unknown type are skipped and listed in the response",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["storage"],
                "summary": "Replace the inventory with the content of a JSON file",
                "parameters": [{"description": "Source path relative to the data directory, defaults to the data file", "name": "file", "in": "body", "schema": {"$ref": "#/definitions/handlers.FileRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LoadResult"}},
                    "400": {"description": "Path outside the data directory", "schema": {"type": "string"}},
                    "404": {"description": "File not found", "schema": {"type": "string"}},
                    "422": {"description": "Malformed file", "schema": {"type": "string"}}
                }
            }
        },
        "/metrics/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Dashboard metrics for the inventory view",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/repo.Summary"}}}
            }
        }
    },
    "definitions": {
        "handlers.FileRequest": {"type": "object", "properties": {"path": {"type": "string"}}},
        "handlers.ImportProductsResult": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductValidationError"}},
                "imported": {"type": "integer"}
            }
        },
        "handlers.LoadResult": {
            "type": "object",
            "properties": {
                "loaded": {"type": "integer"},
                "path": {"type": "string"},
                "skipped": {"type": "array", "items": {"$ref": "#/definitions/repo.SkippedRecord"}}
            }
        },
        "handlers.Meta": {
            "type": "object",
            "properties": {"total_count": {"type": "integer"}, "total_value": {"type": "string"}}
        },
        "handlers.ProductRequest": {
            "type": "object",
            "properties": {
                "brand": {"type": "string"},
                "expiry_date": {"type": "string"},
                "material": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "product_id": {"type": "string"},
                "quantity_in_stock": {"type": "integer"},
                "size": {"type": "string"},
                "type": {"type": "string", "enum": ["Electronics", "Grocery", "Clothing"]},
                "warranty_years": {"type": "integer"}
            }
        },
        "handlers.ProductResponse": {
            "type": "object",
            "properties": {
                "brand": {"type": "string"},
                "description": {"type": "string"},
                "expiry_date": {"type": "string"},
                "material": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "product_id": {"type": "string"},
                "quantity_in_stock": {"type": "integer"},
                "size": {"type": "string"},
                "total_value": {"type": "string"},
                "type": {"type": "string"},
                "warranty_years": {"type": "integer"}
            }
        },
        "handlers.ProductValidationError": {
            "type": "object",
            "properties": {"description": {"type": "string"}, "field": {"type": "string"}}
        },
        "handlers.ProductsSearchResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/handlers.ProductResponse"}},
                "meta": {"$ref": "#/definitions/handlers.Meta"}
            }
        },
        "handlers.QuantityRequest": {"type": "object", "properties": {"quantity": {"type": "integer"}}},
        "handlers.RemoveExpiredResult": {
            "type": "object",
            "properties": {
                "reference_date": {"type": "string"},
                "removed": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handlers.SaveResult": {
            "type": "object",
            "properties": {"path": {"type": "string"}, "saved": {"type": "integer"}}
        },
        "handlers.TotalValueResponse": {"type": "object", "properties": {"total_value": {"type": "string"}}},
        "repo.SkippedRecord": {
            "type": "object",
            "properties": {"index": {"type": "integer"}, "type": {"type": "string"}}
        },
        "repo.Summary": {
            "type": "object",
            "properties": {
                "by_kind": {"type": "object", "additionalProperties": {"type": "integer"}},
                "out_of_stock_count": {"type": "integer"},
                "total_products": {"type": "integer"},
                "total_units": {"type": "integer"},
                "total_value": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Product Inventory API",
	Description:      "REST API for a single-user inventory of electronics, grocery and clothing products.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
