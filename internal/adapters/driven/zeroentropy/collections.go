package zeroentropy

import "context"

// ListCollections returns the names of every collection the key owns.
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	var resp collectionListResponse
	if err := c.post(ctx, endpointListCollections, nil, &resp); err != nil {
		return nil, err
	}
	if resp.CollectionNames == nil {
		return []string{}, nil
	}
	return resp.CollectionNames, nil
}

// AddCollection creates a collection.
func (c *Client) AddCollection(ctx context.Context, name string) error {
	return c.post(ctx, endpointAddCollection, collectionRequest{CollectionName: name}, nil)
}

// DeleteCollection removes a collection.
func (c *Client) DeleteCollection(ctx context.Context, name string) error {
	return c.post(ctx, endpointDeleteCollection, collectionRequest{CollectionName: name}, nil)
}
