package client

// Operation documents used by the Go client. These match the schema
// served at /api/graphql field for field.

const GetBrands = `
  query GetBrands {
    brands {
      id
      name
      logoUrl
      websiteUrl
      createdAt
      updatedAt
    }
  }
`

const GetBrand = `
  query GetBrand($id: ID!) {
    brand(id: $id) {
      id
      name
      logoUrl
      websiteUrl
      createdAt
      updatedAt
      gyms {
        id
        name
        branchName
        isActive
      }
    }
  }
`

const GetAllGyms = `
  query GetAllGyms($activeOnly: Boolean = true) {
    gyms(activeOnly: $activeOnly) {
      id
      name
      branchName
      instagramUrl
      instagramHandle
      address
      phone
      latitude
      longitude
      isActive
      createdAt
      updatedAt
      brand {
        id
        name
        logoUrl
        websiteUrl
      }
    }
  }
`

const GetGym = `
  query GetGym($id: ID!) {
    gym(id: $id) {
      id
      name
      branchName
      instagramUrl
      instagramHandle
      address
      phone
      latitude
      longitude
      isActive
      createdAt
      updatedAt
      brand {
        id
        name
        logoUrl
        websiteUrl
      }
    }
  }
`

const GetRouteUpdates = `
  query GetRouteUpdates(
    $gymId: ID
    $type: UpdateType
    $limit: Int = 10
    $offset: Int = 0
  ) {
    routeUpdates(gymId: $gymId, type: $type, limit: $limit, offset: $offset) {
      id
      gymId
      type
      updateDate
      title
      description
      instagramPostUrl
      instagramPostId
      imageUrls
      rawCaption
      parsedData
      isVerified
      createdAt
      updatedAt
      gym {
        id
        name
        branchName
        instagramHandle
        brand {
          id
          name
          logoUrl
        }
      }
    }
  }
`

const GetRouteUpdate = `
  query GetRouteUpdate($id: ID!) {
    routeUpdate(id: $id) {
      id
      gymId
      type
      updateDate
      title
      description
      instagramPostUrl
      instagramPostId
      imageUrls
      rawCaption
      parsedData
      isVerified
      createdAt
      updatedAt
      gym {
        id
        name
        branchName
        instagramHandle
        brand {
          id
          name
          logoUrl
        }
      }
    }
  }
`

const GetCrawlLogs = `
  query GetCrawlLogs($gymId: ID) {
    crawlLogs(gymId: $gymId) {
      id
      gymId
      status
      postsFound
      postsNew
      errorMessage
      startedAt
      completedAt
      createdAt
      gym {
        id
        name
        branchName
        brand {
          id
          name
        }
      }
    }
  }
`

const CreateBrand = `
  mutation CreateBrand($input: CreateBrandInput!) {
    createBrand(input: $input) {
      id
      name
      logoUrl
      websiteUrl
      createdAt
      updatedAt
    }
  }
`

const UpdateBrand = `
  mutation UpdateBrand($id: ID!, $input: UpdateBrandInput!) {
    updateBrand(id: $id, input: $input) {
      id
      name
      logoUrl
      websiteUrl
      createdAt
      updatedAt
    }
  }
`

const DeleteBrand = `
  mutation DeleteBrand($id: ID!) {
    deleteBrand(id: $id)
  }
`

const DeleteBrandCascade = `
  mutation DeleteBrandCascade($id: ID!) {
    deleteBrandCascade(id: $id)
  }
`

const CreateGym = `
  mutation CreateGym($input: CreateGymInput!) {
    createGym(input: $input) {
      id
      name
      branchName
      instagramUrl
      instagramHandle
      address
      phone
      latitude
      longitude
      isActive
      createdAt
      updatedAt
      brand {
        id
        name
        logoUrl
        websiteUrl
      }
    }
  }
`

const UpdateGym = `
  mutation UpdateGym($id: ID!, $input: UpdateGymInput!) {
    updateGym(id: $id, input: $input) {
      id
      name
      branchName
      instagramUrl
      instagramHandle
      address
      phone
      latitude
      longitude
      isActive
      createdAt
      updatedAt
      brand {
        id
        name
        logoUrl
        websiteUrl
      }
    }
  }
`

const DeleteGym = `
  mutation DeleteGym($id: ID!) {
    deleteGym(id: $id)
  }
`

const CreateRouteUpdate = `
  mutation CreateRouteUpdate($input: CreateRouteUpdateInput!) {
    createRouteUpdate(input: $input) {
      id
      gymId
      type
      updateDate
      title
      description
      instagramPostUrl
      instagramPostId
      imageUrls
      rawCaption
      parsedData
      isVerified
      createdAt
      updatedAt
      gym {
        id
        name
        branchName
        instagramHandle
        brand {
          id
          name
          logoUrl
        }
      }
    }
  }
`

const UpdateRouteUpdate = `
  mutation UpdateRouteUpdate($id: ID!, $input: UpdateRouteUpdateInput!) {
    updateRouteUpdate(id: $id, input: $input) {
      id
      gymId
      type
      updateDate
      title
      description
      instagramPostUrl
      instagramPostId
      imageUrls
      rawCaption
      parsedData
      isVerified
      createdAt
      updatedAt
      gym {
        id
        name
        branchName
        instagramHandle
        brand {
          id
          name
          logoUrl
        }
      }
    }
  }
`

const DeleteRouteUpdate = `
  mutation DeleteRouteUpdate($id: ID!) {
    deleteRouteUpdate(id: $id)
  }
`

const CreateCrawlLog = `
  mutation CreateCrawlLog($input: CreateCrawlLogInput!) {
    createCrawlLog(input: $input) {
      id
      gymId
      status
      postsFound
      postsNew
      errorMessage
      startedAt
      completedAt
      createdAt
      gym {
        id
        name
        branchName
        brand {
          id
          name
        }
      }
    }
  }
`

const UpdateCrawlLog = `
  mutation UpdateCrawlLog($id: ID!, $input: UpdateCrawlLogInput!) {
    updateCrawlLog(id: $id, input: $input) {
      id
      gymId
      status
      postsFound
      postsNew
      errorMessage
      startedAt
      completedAt
      createdAt
      gym {
        id
        name
        branchName
        brand {
          id
          name
        }
      }
    }
  }
`
