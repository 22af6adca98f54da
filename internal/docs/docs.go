// Package docs contiene el mapa de rutas en formato swagger 2.0 (swaggo).
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
        "/": {
            "get": {
                "tags": [
                    "accounts"
                ],
                "summary": "Página de login",
                "parameters": [
                    {
                        "type": "string",
                        "description": "next",
                        "name": "next",
                        "in": "query",
                        "required": false
                    }
                ],
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "HTML",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "accounts"
                ],
                "summary": "Autenticar",
                "parameters": [
                    {
                        "type": "string",
                        "description": "username",
                        "name": "username",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "password",
                        "name": "password",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "next",
                        "name": "next",
                        "in": "formData",
                        "required": false
                    }
                ],
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "redirect",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/accounts/signup/": {
            "get": {
                "tags": [
                    "accounts"
                ],
                "summary": "Página de registro",
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "HTML",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "accounts"
                ],
                "summary": "Crear cuenta",
                "parameters": [
                    {
                        "type": "string",
                        "description": "username",
                        "name": "username",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "password1",
                        "name": "password1",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "password2",
                        "name": "password2",
                        "in": "formData",
                        "required": true
                    }
                ],
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "redirect",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/accounts/logout/": {
            "post": {
                "tags": [
                    "accounts"
                ],
                "summary": "Cerrar sesión",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "redirect",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/cats/": {
            "get": {
                "tags": [
                    "cats"
                ],
                "summary": "Listar mis gatos",
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "HTML",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/cats/create/": {
            "get": {
                "tags": [
                    "cats"
                ],
                "summary": "Formulario de alta de gato",
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "HTML",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "cats"
                ],
                "summary": "Crear gato",
                "parameters": [
                    {
                        "type": "string",
                        "description": "name",
                        "name": "name",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "breed",
                        "name": "breed",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "description",
                        "name": "description",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "age",
                        "name": "age",
                        "in": "formData",
                        "required": true
                    }
                ],
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "redirect",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/cats/{catID}/": {
            "get": {
                "tags": [
                    "cats"
                ],
                "summary": "Detalle de un gato",
                "parameters": [
                    {
                        "type": "string",
                        "description": "catID",
                        "name": "catID",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "HTML",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/cats/{catID}/update/": {
            "get": {
                "tags": [
                    "cats"
                ],
                "summary": "Formulario de edición de gato",
                "parameters": [
                    {
                        "type": "string",
                        "description": "catID",
                        "name": "catID",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "HTML",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "cats"
                ],
                "summary": "Actualizar gato",
                "parameters": [
                    {
                        "type": "string",
                        "description": "catID",
                        "name": "catID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "breed",
                        "name": "breed",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "description",
                        "name": "description",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "age",
                        "name": "age",
                        "in": "formData",
                        "required": true
                    }
                ],
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "redirect",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/cats/{catID}/delete/": {
            "get": {
                "tags": [
                    "cats"
                ],
                "summary": "Confirmar borrado de gato",
                "parameters": [
                    {
                        "type": "string",
                        "description": "catID",
                        "name": "catID",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "HTML",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "cats"
                ],
                "summary": "Borrar gato",
                "parameters": [
                    {
                        "type": "string",
                        "description": "catID",
                        "name": "catID",
                        "in": "path",
                        "required": true
                    }
                ],
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "redirect",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/cats/{catID}/add_feeding/": {
            "post": {
                "tags": [
                    "cats"
                ],
                "summary": "Registrar comida",
                "parameters": [
                    {
                        "type": "string",
                        "description": "catID",
                        "name": "catID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "date",
                        "name": "date",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "meal",
                        "name": "meal",
                        "in": "formData",
                        "required": false
                    }
                ],
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "redirect",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/cats/{catID}/assoc_toy/{toyID}/": {
            "post": {
                "tags": [
                    "cats"
                ],
                "summary": "Asociar juguete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "catID",
                        "name": "catID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "toyID",
                        "name": "toyID",
                        "in": "path",
                        "required": true
                    }
                ],
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "redirect",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/cats/{catID}/unassoc_toy/{toyID}/": {
            "post": {
                "tags": [
                    "cats"
                ],
                "summary": "Quitar juguete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "catID",
                        "name": "catID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "toyID",
                        "name": "toyID",
                        "in": "path",
                        "required": true
                    }
                ],
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "redirect",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/toys/": {
            "get": {
                "tags": [
                    "toys"
                ],
                "summary": "Listar juguetes",
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "HTML",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/toys/create/": {
            "get": {
                "tags": [
                    "toys"
                ],
                "summary": "Formulario de alta de juguete",
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "HTML",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "toys"
                ],
                "summary": "Crear juguete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "name",
                        "name": "name",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "color",
                        "name": "color",
                        "in": "formData",
                        "required": true
                    }
                ],
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "redirect",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/toys/{toyID}/": {
            "get": {
                "tags": [
                    "toys"
                ],
                "summary": "Detalle de juguete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "toyID",
                        "name": "toyID",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "HTML",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/toys/{toyID}/update/": {
            "get": {
                "tags": [
                    "toys"
                ],
                "summary": "Formulario de juguete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "toyID",
                        "name": "toyID",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "HTML",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "toys"
                ],
                "summary": "Actualizar juguete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "toyID",
                        "name": "toyID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "name",
                        "name": "name",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "color",
                        "name": "color",
                        "in": "formData",
                        "required": true
                    }
                ],
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "redirect",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/toys/{toyID}/delete/": {
            "get": {
                "tags": [
                    "toys"
                ],
                "summary": "Confirmar borrado de juguete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "toyID",
                        "name": "toyID",
                        "in": "path",
                        "required": true
                    }
                ],
                "produces": [
                    "text/html"
                ],
                "responses": {
                    "200": {
                        "description": "HTML",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "toys"
                ],
                "summary": "Borrar juguete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "toyID",
                        "name": "toyID",
                        "in": "path",
                        "required": true
                    }
                ],
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "responses": {
                    "303": {
                        "description": "redirect",
                        "schema": {
                            "type": "string"
                        }
                    }
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
	Title:            "Cat Collector",
	Description:      "Páginas HTML de Cat Collector. Las rutas de /cats y /toys requieren sesión.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
