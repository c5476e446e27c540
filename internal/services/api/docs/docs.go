// Package docs holds the OpenAPI document served by the swagger UI.
// Regenerate with: swag init --v3.1 -g internal/services/api/api.go -o internal/services/api/docs
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.1.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/listings/title": {
            "post": {
                "tags": ["Listings"],
                "summary": "Compose a listing title from raw title text and tags",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.TitleInput"}}}
                },
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Listing"}}}
                    }
                }
            }
        },
        "/listings/product": {
            "post": {
                "tags": ["Listings"],
                "summary": "Fetch a storefront product by URL or SKU and compose its listing title",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.ProductInput"}}}
                },
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Listing"}}}
                    },
                    "404": {
                        "description": "product page not found",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    },
                    "503": {
                        "description": "storefront unavailable",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    }
                }
            }
        },
        "/listings/profiles": {
            "get": {
                "tags": ["Listings"],
                "summary": "Title profiles and their budgets",
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/domain.ProfileInfo"}}}}
                    }
                }
            }
        },
        "/meta/health": {
            "get": {
                "tags": ["Meta"],
                "summary": "Health check",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/meta/ready": {
            "get": {
                "tags": ["Meta"],
                "summary": "Readiness probe with dependency checks",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/meta/version": {
            "get": {
                "tags": ["Meta"],
                "summary": "Build and version info",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/meta/service": {
            "get": {
                "tags": ["Meta"],
                "summary": "Service info and uptime",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/meta/lexicon": {
            "get": {
                "tags": ["Meta"],
                "summary": "Lexicon version and table sizes",
                "responses": {"200": {"description": "ok"}}
            }
        }
    },
    "components": {
        "schemas": {
            "domain.TitleInput": {
                "type": "object",
                "properties": {
                    "title": {"type": "string", "maxLength": 1000, "example": "TK3180 - Women's Stainless Steel Ring with Clear Cubic Zirconia, IP Gold (Ion Plating), High Polished"},
                    "tags": {"type": "array", "items": {"type": "string"}, "example": ["women", "ring", "solitaire", "round"]},
                    "profile": {"type": "string", "enum": ["canonical", "legacy", "strict"], "example": "canonical"}
                }
            },
            "domain.ProductInput": {
                "type": "object",
                "required": ["product"],
                "properties": {
                    "product": {"type": "string", "maxLength": 500, "example": "TK3180"},
                    "profile": {"type": "string", "enum": ["canonical", "legacy", "strict"], "example": "legacy"},
                    "allow_partial": {"type": "boolean", "example": false}
                }
            },
            "domain.ProfileInfo": {
                "type": "object",
                "properties": {
                    "name": {"type": "string", "example": "canonical"},
                    "description": {"type": "string"},
                    "budget": {"type": "integer", "example": 80},
                    "gift": {"type": "boolean", "example": false},
                    "strict_descriptors": {"type": "boolean", "example": false},
                    "rescue": {"type": "string", "example": "abbreviate"},
                    "default": {"type": "boolean", "example": true}
                }
            },
            "extract.RawInput": {
                "type": "object",
                "properties": {
                    "title": {"type": "string"},
                    "tags": {"type": "array", "items": {"type": "string"}}
                }
            },
            "extract.Attributes": {
                "type": "object",
                "properties": {
                    "audience": {"type": "string", "enum": ["Women", "Men", "Unspecified"]},
                    "is_set": {"type": "boolean"},
                    "product_type": {"type": "string", "example": "Ring"},
                    "styles": {"type": "array", "items": {"type": "string"}},
                    "stone_shape": {"type": "string", "example": "Round"},
                    "stone_color": {"type": "string", "example": "Clear"},
                    "stone_type": {"type": "string", "example": "Cubic Zirconia"},
                    "material": {"type": "string", "example": "Stainless Steel"},
                    "plating": {"type": "array", "items": {"type": "string"}, "maxItems": 2},
                    "descriptors": {"type": "array", "items": {"type": "string"}}
                }
            },
            "compose.Sections": {
                "type": "object",
                "properties": {
                    "base": {"type": "string", "example": "Women's Ring"},
                    "style": {"type": "string"},
                    "stone": {"type": "string"},
                    "metal": {"type": "string"},
                    "descriptors": {"type": "array", "items": {"type": "string"}}
                }
            },
            "domain.Source": {
                "type": "object",
                "properties": {
                    "kind": {"type": "string", "enum": ["title", "product"]},
                    "url": {"type": "string"},
                    "fetch_error": {"type": "string"},
                    "raw": {"$ref": "#/components/schemas/extract.RawInput"}
                }
            },
            "domain.Listing": {
                "type": "object",
                "properties": {
                    "id": {"type": "string", "format": "uuid"},
                    "title": {"type": "string", "example": "Women's Ring, Solitaire, Round Clear Cubic Zirconia, Stainless Steel Gold-Plated"},
                    "length": {"type": "integer", "example": 80},
                    "budget": {"type": "integer", "example": 80},
                    "profile": {"type": "string", "example": "canonical"},
                    "overflow": {"type": "boolean"},
                    "rescued": {"type": "boolean"},
                    "attributes": {"$ref": "#/components/schemas/extract.Attributes"},
                    "sections": {"$ref": "#/components/schemas/compose.Sections"},
                    "source": {"$ref": "#/components/schemas/domain.Source"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "titlesmith API",
	Description:      "Composes budget-bounded marketplace titles for jewelry listings.",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
