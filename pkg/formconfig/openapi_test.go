package formconfig

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const contactAPI = `{
  "openapi": "3.0.3",
  "info": {"title": "contact", "version": "1.0.0"},
  "paths": {
    "/api/v1/contact": {
      "post": {
        "operationId": "sendContact",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {"$ref": "#/components/schemas/ContactRequest"}
            }
          }
        },
        "responses": {"200": {"description": "ok"}}
      }
    },
    "/api/v1/bookings": {
      "post": {
        "operationId": "createBooking",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["package"],
                "properties": {
                  "notes": {"type": "string"},
                  "package": {"type": "integer"},
                  "customer": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "created"}}
      }
    }
  },
  "components": {
    "schemas": {
      "ContactRequest": {
        "type": "object",
        "x-field-order": ["name", "email", "phone", "message", "unknown"],
        "required": ["name", "email", "message"],
        "properties": {
          "message": {"type": "string"},
          "phone": {"type": "string"},
          "email": {"type": "string"},
          "name": {"type": "string"}
        }
      }
    }
  }
}`

func TestFromOpenAPI(t *testing.T) {
	cfg, err := FromOpenAPI(context.Background(), []byte(contactAPI), "sendContact")
	if err != nil {
		t.Fatalf("from openapi: %v", err)
	}
	if cfg.Endpoint != "/api/v1/contact" {
		t.Fatalf("endpoint = %q", cfg.Endpoint)
	}
	if diff := cmp.Diff([]string{"name", "email", "phone", "message"}, cfg.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	cfg, err = FromOpenAPI(context.Background(), []byte(contactAPI), "createBooking")
	if err != nil {
		t.Fatalf("from openapi: %v", err)
	}
	if diff := cmp.Diff([]string{"package", "customer", "notes"}, cfg.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFromOpenAPI_Errors(t *testing.T) {
	if _, err := FromOpenAPI(context.Background(), nil, "x"); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := FromOpenAPI(context.Background(), []byte(contactAPI), "missing"); err == nil {
		t.Fatalf("expected error for unknown operation")
	}
}
