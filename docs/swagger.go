package docs

import "github.com/swaggo/swag"

// @title           Scraty API
// @version         1.0
// @description     API for a kanban-style task board: stories, cards, user roster.

// @host      localhost:8080
// @BasePath  /

// @tag.name Board
// @tag.description Board page and board fetch

// @tag.name Stories
// @tag.description Story create, update, soft-delete

// @tag.name Cards
// @tag.description Card create, update, soft-delete, move

// @tag.name Users
// @tag.description Bulk roster management

const docTemplate = `{
    "schemes": ["http"],
    "swagger": "2.0",
    "info": {
        "title": "Scraty API",
        "description": "API for a kanban-style task board: stories, cards, user roster.",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/"
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Scraty API",
	Description:      "API for a kanban-style task board: stories, cards, user roster.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
