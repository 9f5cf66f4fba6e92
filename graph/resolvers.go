package graph

import (
	"github.com/JinJinHistory/climb-hub/services"

	"github.com/graphql-go/graphql"
)

// Resolver routes named operations to the services and normalizes the
// results into API shape.
type Resolver struct {
	Brands       *services.BrandService
	Gyms         *services.GymService
	RouteUpdates *services.RouteUpdateService
	CrawlLogs    *services.CrawlLogService
}

// --- Query resolvers ---

func (r *Resolver) resolveBrands(p graphql.ResolveParams) (interface{}, error) {
	brands, err := r.Brands.List(p.Context)
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]interface{}, 0, len(brands))
	for i := range brands {
		out = append(out, normalizeBrand(&brands[i]))
	}
	return out, nil
}

func (r *Resolver) resolveBrand(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	brand, err := r.Brands.Get(p.Context, id)
	if err != nil {
		return nil, wrapError(err)
	}
	if brand == nil {
		return nil, nil
	}
	return normalizeBrand(brand), nil
}

func (r *Resolver) resolveGyms(p graphql.ResolveParams) (interface{}, error) {
	activeOnly := true
	if v, ok := p.Args["activeOnly"].(bool); ok {
		activeOnly = v
	}
	gyms, err := r.Gyms.List(p.Context, activeOnly)
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]interface{}, 0, len(gyms))
	for i := range gyms {
		out = append(out, normalizeGym(&gyms[i]))
	}
	return out, nil
}

func (r *Resolver) resolveGym(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	gym, err := r.Gyms.Get(p.Context, id)
	if err != nil {
		return nil, wrapError(err)
	}
	if gym == nil {
		return nil, nil
	}
	return normalizeGym(gym), nil
}

func (r *Resolver) resolveRouteUpdates(p graphql.ResolveParams) (interface{}, error) {
	input := services.ListRouteUpdatesInput{
		GymID: optStringArg(p.Args, "gymId"),
		Type:  optStringArg(p.Args, "type"),
	}
	if limit := optIntArg(p.Args, "limit"); limit != nil {
		input.Limit = *limit
	}
	if offset := optIntArg(p.Args, "offset"); offset != nil {
		input.Offset = *offset
	}

	updates, err := r.RouteUpdates.List(p.Context, input)
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]interface{}, 0, len(updates))
	for i := range updates {
		out = append(out, normalizeRouteUpdate(&updates[i]))
	}
	return out, nil
}

func (r *Resolver) resolveRouteUpdate(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	update, err := r.RouteUpdates.Get(p.Context, id)
	if err != nil {
		return nil, wrapError(err)
	}
	if update == nil {
		return nil, nil
	}
	return normalizeRouteUpdate(update), nil
}

func (r *Resolver) resolveCrawlLogs(p graphql.ResolveParams) (interface{}, error) {
	logs, err := r.CrawlLogs.List(p.Context, optStringArg(p.Args, "gymId"))
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]interface{}, 0, len(logs))
	for i := range logs {
		out = append(out, normalizeCrawlLog(&logs[i]))
	}
	return out, nil
}

func (r *Resolver) resolveCrawlLog(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	log, err := r.CrawlLogs.Get(p.Context, id)
	if err != nil {
		return nil, wrapError(err)
	}
	if log == nil {
		return nil, nil
	}
	return normalizeCrawlLog(log), nil
}

// --- Nested field resolvers ---

func (r *Resolver) resolveBrandGyms(p graphql.ResolveParams) (interface{}, error) {
	parent, ok := p.Source.(map[string]interface{})
	if !ok {
		return []interface{}{}, nil
	}
	brandID, _ := parent["id"].(string)
	gyms, err := r.Gyms.ListByBrand(p.Context, brandID)
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]interface{}, 0, len(gyms))
	for i := range gyms {
		out = append(out, normalizeGym(&gyms[i]))
	}
	return out, nil
}

func (r *Resolver) resolveGymRouteUpdates(p graphql.ResolveParams) (interface{}, error) {
	parent, ok := p.Source.(map[string]interface{})
	if !ok {
		return []interface{}{}, nil
	}
	gymID, _ := parent["id"].(string)
	updates, err := r.RouteUpdates.ListByGym(p.Context, gymID)
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]interface{}, 0, len(updates))
	for i := range updates {
		out = append(out, normalizeRouteUpdate(&updates[i]))
	}
	return out, nil
}

// --- Mutation resolvers ---

func (r *Resolver) resolveCreateBrand(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["input"].(map[string]interface{})
	brand, err := r.Brands.Create(p.Context, services.CreateBrandInput{
		Name:       stringArg(input, "name"),
		LogoURL:    optStringArg(input, "logoUrl"),
		WebsiteURL: optStringArg(input, "websiteUrl"),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return normalizeBrand(brand), nil
}

func (r *Resolver) resolveUpdateBrand(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	input, _ := p.Args["input"].(map[string]interface{})
	brand, err := r.Brands.Update(p.Context, id, services.UpdateBrandInput{
		Name:       optStringArg(input, "name"),
		LogoURL:    optStringArg(input, "logoUrl"),
		WebsiteURL: optStringArg(input, "websiteUrl"),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return normalizeBrand(brand), nil
}

func (r *Resolver) resolveDeleteBrand(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	if err := r.Brands.Delete(p.Context, id); err != nil {
		return nil, wrapError(err)
	}
	return true, nil
}

func (r *Resolver) resolveDeleteBrandCascade(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	if err := r.Brands.DeleteCascade(p.Context, id); err != nil {
		return nil, wrapError(err)
	}
	return true, nil
}

func (r *Resolver) resolveCreateGym(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["input"].(map[string]interface{})
	gym, err := r.Gyms.Create(p.Context, services.CreateGymInput{
		BrandID:         stringArg(input, "brandId"),
		Name:            stringArg(input, "name"),
		BranchName:      stringArg(input, "branchName"),
		InstagramURL:    stringArg(input, "instagramUrl"),
		InstagramHandle: stringArg(input, "instagramHandle"),
		Address:         optStringArg(input, "address"),
		Phone:           optStringArg(input, "phone"),
		Latitude:        optFloatArg(input, "latitude"),
		Longitude:       optFloatArg(input, "longitude"),
		IsActive:        optBoolArg(input, "isActive"),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return normalizeGym(gym), nil
}

func (r *Resolver) resolveUpdateGym(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	input, _ := p.Args["input"].(map[string]interface{})
	gym, err := r.Gyms.Update(p.Context, id, services.UpdateGymInput{
		BrandID:         optStringArg(input, "brandId"),
		Name:            optStringArg(input, "name"),
		BranchName:      optStringArg(input, "branchName"),
		InstagramURL:    optStringArg(input, "instagramUrl"),
		InstagramHandle: optStringArg(input, "instagramHandle"),
		Address:         optStringArg(input, "address"),
		Phone:           optStringArg(input, "phone"),
		Latitude:        optFloatArg(input, "latitude"),
		Longitude:       optFloatArg(input, "longitude"),
		IsActive:        optBoolArg(input, "isActive"),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return normalizeGym(gym), nil
}

func (r *Resolver) resolveDeleteGym(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	if err := r.Gyms.Delete(p.Context, id); err != nil {
		return nil, wrapError(err)
	}
	return true, nil
}

func (r *Resolver) resolveCreateRouteUpdate(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["input"].(map[string]interface{})
	update, err := r.RouteUpdates.Create(p.Context, services.CreateRouteUpdateInput{
		GymID:            stringArg(input, "gymId"),
		Type:             stringArg(input, "type"),
		UpdateDate:       stringArg(input, "updateDate"),
		Title:            optStringArg(input, "title"),
		Description:      optStringArg(input, "description"),
		InstagramPostURL: optStringArg(input, "instagramPostUrl"),
		InstagramPostID:  optStringArg(input, "instagramPostId"),
		ImageURLs:        stringSliceArg(input, "imageUrls"),
		RawCaption:       optStringArg(input, "rawCaption"),
		ParsedData:       mapArg(input, "parsedData"),
		IsVerified:       optBoolArg(input, "isVerified"),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return normalizeRouteUpdate(update), nil
}

func (r *Resolver) resolveUpdateRouteUpdate(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	input, _ := p.Args["input"].(map[string]interface{})
	update, err := r.RouteUpdates.Update(p.Context, id, services.UpdateRouteUpdateInput{
		GymID:            optStringArg(input, "gymId"),
		Type:             optStringArg(input, "type"),
		UpdateDate:       optStringArg(input, "updateDate"),
		Title:            optStringArg(input, "title"),
		Description:      optStringArg(input, "description"),
		InstagramPostURL: optStringArg(input, "instagramPostUrl"),
		InstagramPostID:  optStringArg(input, "instagramPostId"),
		ImageURLs:        optStringSliceArg(input, "imageUrls"),
		RawCaption:       optStringArg(input, "rawCaption"),
		ParsedData:       optMapArg(input, "parsedData"),
		IsVerified:       optBoolArg(input, "isVerified"),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return normalizeRouteUpdate(update), nil
}

func (r *Resolver) resolveDeleteRouteUpdate(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	if err := r.RouteUpdates.Delete(p.Context, id); err != nil {
		return nil, wrapError(err)
	}
	return true, nil
}

func (r *Resolver) resolveCreateCrawlLog(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["input"].(map[string]interface{})
	svcInput := services.CreateCrawlLogInput{
		GymID:        stringArg(input, "gymId"),
		Status:       stringArg(input, "status"),
		ErrorMessage: optStringArg(input, "errorMessage"),
		StartedAt:    stringArg(input, "startedAt"),
		CompletedAt:  optStringArg(input, "completedAt"),
	}
	if v := optIntArg(input, "postsFound"); v != nil {
		svcInput.PostsFound = *v
	}
	if v := optIntArg(input, "postsNew"); v != nil {
		svcInput.PostsNew = *v
	}

	log, err := r.CrawlLogs.Create(p.Context, svcInput)
	if err != nil {
		return nil, wrapError(err)
	}
	return normalizeCrawlLog(log), nil
}

func (r *Resolver) resolveUpdateCrawlLog(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	input, _ := p.Args["input"].(map[string]interface{})
	log, err := r.CrawlLogs.Update(p.Context, id, services.UpdateCrawlLogInput{
		Status:       optStringArg(input, "status"),
		PostsFound:   optIntArg(input, "postsFound"),
		PostsNew:     optIntArg(input, "postsNew"),
		ErrorMessage: optStringArg(input, "errorMessage"),
		CompletedAt:  optStringArg(input, "completedAt"),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return normalizeCrawlLog(log), nil
}
