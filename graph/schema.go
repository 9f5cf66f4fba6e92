// Package graph exposes the query/mutation surface over the services.
// The schema is built at startup with graphql-go; no code generation.
package graph

import (
	"github.com/JinJinHistory/climb-hub/models"

	"github.com/graphql-go/graphql"
)

var updateTypeEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "UpdateType",
	Values: graphql.EnumValueConfigMap{
		"NEWSET":       &graphql.EnumValueConfig{Value: models.UpdateTypeNewSet},
		"REMOVAL":      &graphql.EnumValueConfig{Value: models.UpdateTypeRemoval},
		"ANNOUNCEMENT": &graphql.EnumValueConfig{Value: models.UpdateTypeAnnouncement},
	},
})

var crawlStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "CrawlStatus",
	Values: graphql.EnumValueConfigMap{
		"success": &graphql.EnumValueConfig{Value: models.CrawlStatusSuccess},
		"failed":  &graphql.EnumValueConfig{Value: models.CrawlStatusFailed},
		"partial": &graphql.EnumValueConfig{Value: models.CrawlStatusPartial},
	},
})

func nonNullList(t graphql.Type) graphql.Type {
	return graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t)))
}

// NewSchema builds the executable schema wired to the resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	brandType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Brand",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"logoUrl":    &graphql.Field{Type: graphql.String},
			"websiteUrl": &graphql.Field{Type: graphql.String},
			"createdAt":  &graphql.Field{Type: graphql.String},
			"updatedAt":  &graphql.Field{Type: graphql.String},
		},
	})

	gymType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Gym",
		Fields: graphql.Fields{
			"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"brandId":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"name":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"branchName":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"instagramUrl":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"instagramHandle": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"address":         &graphql.Field{Type: graphql.String},
			"phone":           &graphql.Field{Type: graphql.String},
			"latitude":        &graphql.Field{Type: graphql.Float},
			"longitude":       &graphql.Field{Type: graphql.Float},
			"isActive":        &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"createdAt":       &graphql.Field{Type: graphql.String},
			"updatedAt":       &graphql.Field{Type: graphql.String},
		},
	})

	routeUpdateType := graphql.NewObject(graphql.ObjectConfig{
		Name: "RouteUpdate",
		Fields: graphql.Fields{
			"id":               &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"gymId":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"type":             &graphql.Field{Type: graphql.NewNonNull(updateTypeEnum)},
			"updateDate":       &graphql.Field{Type: graphql.String},
			"title":            &graphql.Field{Type: graphql.String},
			"description":      &graphql.Field{Type: graphql.String},
			"instagramPostUrl": &graphql.Field{Type: graphql.String},
			"instagramPostId":  &graphql.Field{Type: graphql.String},
			"imageUrls":        &graphql.Field{Type: nonNullList(graphql.String)},
			"rawCaption":       &graphql.Field{Type: graphql.String},
			"parsedData":       &graphql.Field{Type: jsonScalar},
			"isVerified":       &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"createdAt":        &graphql.Field{Type: graphql.String},
			"updatedAt":        &graphql.Field{Type: graphql.String},
		},
	})

	crawlLogType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CrawlLog",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"gymId":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"status":       &graphql.Field{Type: graphql.NewNonNull(crawlStatusEnum)},
			"postsFound":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"postsNew":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"errorMessage": &graphql.Field{Type: graphql.String},
			"startedAt":    &graphql.Field{Type: graphql.String},
			"completedAt":  &graphql.Field{Type: graphql.String},
			"createdAt":    &graphql.Field{Type: graphql.String},
		},
	})

	// Relation fields are attached after construction to close the
	// Brand <-> Gym <-> RouteUpdate cycles.
	brandType.AddFieldConfig("gyms", &graphql.Field{
		Type:    nonNullList(gymType),
		Resolve: r.resolveBrandGyms,
	})
	gymType.AddFieldConfig("brand", &graphql.Field{Type: brandType})
	gymType.AddFieldConfig("routeUpdates", &graphql.Field{
		Type:    nonNullList(routeUpdateType),
		Resolve: r.resolveGymRouteUpdates,
	})
	routeUpdateType.AddFieldConfig("gym", &graphql.Field{Type: gymType})
	crawlLogType.AddFieldConfig("gym", &graphql.Field{Type: gymType})

	createBrandInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateBrandInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"logoUrl":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"websiteUrl": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	updateBrandInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateBrandInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"logoUrl":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"websiteUrl": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	createGymInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateGymInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"brandId":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"name":            &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"branchName":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"instagramUrl":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"instagramHandle": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"address":         &graphql.InputObjectFieldConfig{Type: graphql.String},
			"phone":           &graphql.InputObjectFieldConfig{Type: graphql.String},
			"latitude":        &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"longitude":       &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"isActive":        &graphql.InputObjectFieldConfig{Type: graphql.Boolean, DefaultValue: true},
		},
	})

	updateGymInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateGymInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"brandId":         &graphql.InputObjectFieldConfig{Type: graphql.String},
			"name":            &graphql.InputObjectFieldConfig{Type: graphql.String},
			"branchName":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"instagramUrl":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"instagramHandle": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"address":         &graphql.InputObjectFieldConfig{Type: graphql.String},
			"phone":           &graphql.InputObjectFieldConfig{Type: graphql.String},
			"latitude":        &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"longitude":       &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"isActive":        &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})

	createRouteUpdateInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateRouteUpdateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"gymId":            &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"type":             &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(updateTypeEnum)},
			"updateDate":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"title":            &graphql.InputObjectFieldConfig{Type: graphql.String},
			"description":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"instagramPostUrl": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"instagramPostId":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"imageUrls":        &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
			"rawCaption":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"parsedData":       &graphql.InputObjectFieldConfig{Type: jsonScalar},
			"isVerified":       &graphql.InputObjectFieldConfig{Type: graphql.Boolean, DefaultValue: false},
		},
	})

	updateRouteUpdateInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateRouteUpdateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"gymId":            &graphql.InputObjectFieldConfig{Type: graphql.String},
			"type":             &graphql.InputObjectFieldConfig{Type: updateTypeEnum},
			"updateDate":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"title":            &graphql.InputObjectFieldConfig{Type: graphql.String},
			"description":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"instagramPostUrl": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"instagramPostId":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"imageUrls":        &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
			"rawCaption":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"parsedData":       &graphql.InputObjectFieldConfig{Type: jsonScalar},
			"isVerified":       &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})

	createCrawlLogInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateCrawlLogInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"gymId":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"status":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(crawlStatusEnum)},
			"postsFound":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"postsNew":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"errorMessage": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"startedAt":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"completedAt":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	updateCrawlLogInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateCrawlLogInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"status":       &graphql.InputObjectFieldConfig{Type: crawlStatusEnum},
			"postsFound":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"postsNew":     &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"errorMessage": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"completedAt":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"brands": &graphql.Field{
				Type:    nonNullList(brandType),
				Resolve: r.resolveBrands,
			},
			"brand": &graphql.Field{
				Type:    brandType,
				Args:    idArg,
				Resolve: r.resolveBrand,
			},
			"gyms": &graphql.Field{
				Type: nonNullList(gymType),
				Args: graphql.FieldConfigArgument{
					"activeOnly": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: true},
				},
				Resolve: r.resolveGyms,
			},
			"gym": &graphql.Field{
				Type:    gymType,
				Args:    idArg,
				Resolve: r.resolveGym,
			},
			"routeUpdates": &graphql.Field{
				Type: nonNullList(routeUpdateType),
				Args: graphql.FieldConfigArgument{
					"gymId":  &graphql.ArgumentConfig{Type: graphql.ID},
					"type":   &graphql.ArgumentConfig{Type: updateTypeEnum},
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
					"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				},
				Resolve: r.resolveRouteUpdates,
			},
			"routeUpdate": &graphql.Field{
				Type:    routeUpdateType,
				Args:    idArg,
				Resolve: r.resolveRouteUpdate,
			},
			"crawlLogs": &graphql.Field{
				Type: nonNullList(crawlLogType),
				Args: graphql.FieldConfigArgument{
					"gymId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: r.resolveCrawlLogs,
			},
			"crawlLog": &graphql.Field{
				Type:    crawlLogType,
				Args:    idArg,
				Resolve: r.resolveCrawlLog,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createBrand": &graphql.Field{
				Type: graphql.NewNonNull(brandType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createBrandInput)},
				},
				Resolve: r.resolveCreateBrand,
			},
			"updateBrand": &graphql.Field{
				Type: graphql.NewNonNull(brandType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateBrandInput)},
				},
				Resolve: r.resolveUpdateBrand,
			},
			"deleteBrand": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    idArg,
				Resolve: r.resolveDeleteBrand,
			},
			"deleteBrandCascade": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    idArg,
				Resolve: r.resolveDeleteBrandCascade,
			},
			"createGym": &graphql.Field{
				Type: graphql.NewNonNull(gymType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createGymInput)},
				},
				Resolve: r.resolveCreateGym,
			},
			"updateGym": &graphql.Field{
				Type: graphql.NewNonNull(gymType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateGymInput)},
				},
				Resolve: r.resolveUpdateGym,
			},
			"deleteGym": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    idArg,
				Resolve: r.resolveDeleteGym,
			},
			"createRouteUpdate": &graphql.Field{
				Type: graphql.NewNonNull(routeUpdateType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createRouteUpdateInput)},
				},
				Resolve: r.resolveCreateRouteUpdate,
			},
			"updateRouteUpdate": &graphql.Field{
				Type: graphql.NewNonNull(routeUpdateType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateRouteUpdateInput)},
				},
				Resolve: r.resolveUpdateRouteUpdate,
			},
			"deleteRouteUpdate": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    idArg,
				Resolve: r.resolveDeleteRouteUpdate,
			},
			"createCrawlLog": &graphql.Field{
				Type: graphql.NewNonNull(crawlLogType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createCrawlLogInput)},
				},
				Resolve: r.resolveCreateCrawlLog,
			},
			"updateCrawlLog": &graphql.Field{
				Type: graphql.NewNonNull(crawlLogType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateCrawlLogInput)},
				},
				Resolve: r.resolveUpdateCrawlLog,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
