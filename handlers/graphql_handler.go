package handlers

import (
	"net/http"

	"github.com/JinJinHistory/climb-hub/utils"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
)

// GraphQLRequest is the standard POST body for the /api/graphql endpoint.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// GraphQLHandler executes queries and mutations against the schema.
type GraphQLHandler struct {
	schema graphql.Schema
}

// NewGraphQLHandler creates a new GraphQL handler.
func NewGraphQLHandler(schema graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

// Handle executes a single GraphQL request. Execution errors are
// reported in the response body; the HTTP status stays 200 per the
// GraphQL-over-HTTP convention.
func (h *GraphQLHandler) Handle(c *gin.Context) {
	var req GraphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		utils.BadRequest(c, "query is required")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request.Context(),
	})

	c.JSON(http.StatusOK, result)
}
