package schema

// Artist is a catalog artist profile. Slug uniqueness is enforced by the
// persistence layer, not here.
type Artist struct {
	ID         string  `json:"id"`
	Slug       string  `json:"slug"`
	Name       string  `json:"name"`
	Bio        *string `json:"bio,omitempty"`
	WebsiteURL *string `json:"websiteUrl,omitempty"`
	Instagram  *string `json:"instagram,omitempty"`
	Twitter    *string `json:"twitter,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// Category is a hierarchical catalog grouping.
type Category struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Collection is a curated catalog grouping. Structurally close to Category
// but kept distinct: the two serve different catalog relationships.
type Collection struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// Sku is a purchasable variant of an artwork. A nil StockQuantity means
// unlimited stock (digital goods); the digital/stock cross-field rule is
// left to the business layer.
type Sku struct {
	ID             string `json:"id"`
	ArtworkID      string `json:"artworkId"`
	Code           string `json:"sku"`
	IsOriginal     bool   `json:"isOriginal"`
	IsDigital      bool   `json:"isDigital"`
	EditionSize    *int   `json:"editionSize,omitempty"`
	StockQuantity  *int   `json:"stockQuantity"`
	Price          Money  `json:"price"`
	CompareAtPrice *Money `json:"compareAtPrice,omitempty"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// Artwork is the composite catalog entity. SKUs and media are embedded;
// categories and collections are referenced by id only.
type Artwork struct {
	ID            string       `json:"id"`
	ArtistID      string       `json:"artistId"`
	Title         string       `json:"title"`
	Description   *string      `json:"description,omitempty"`
	Year          *int         `json:"year,omitempty"`
	Materials     []string     `json:"materials"`
	Dimensions    *Dimensions  `json:"dimensions,omitempty"`
	Tags          []string     `json:"tags"`
	CategoryIDs   []string     `json:"categoryIds"`
	CollectionIDs []string     `json:"collectionIds"`
	Media         []MediaAsset `json:"media"`
	Skus          []Sku        `json:"skus"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt"`
}

func DecodeArtist(input any) (Artist, error) {
	vs := &violations{}
	a := decodeArtist(input, "", vs)
	if err := vs.asError(); err != nil {
		return Artist{}, err
	}
	return a, nil
}

func decodeArtist(v any, path string, vs *violations) Artist {
	obj, ok := asObject(v, path, vs)
	if !ok {
		return Artist{}
	}
	var a Artist
	a.ID = obj.id("id")
	a.Slug = obj.nonEmptyString("slug")
	a.Name = obj.nonEmptyString("name")
	a.Bio = obj.optionalString("bio")
	a.WebsiteURL = obj.optionalURL("websiteUrl")
	a.Instagram = obj.optionalURL("instagram")
	a.Twitter = obj.optionalURL("twitter")
	a.CreatedAt = obj.dateTime("createdAt")
	a.UpdatedAt = obj.dateTime("updatedAt")
	return a
}

func DecodeCategory(input any) (Category, error) {
	vs := &violations{}
	c := decodeCategory(input, "", vs)
	if err := vs.asError(); err != nil {
		return Category{}, err
	}
	return c, nil
}

func decodeCategory(v any, path string, vs *violations) Category {
	obj, ok := asObject(v, path, vs)
	if !ok {
		return Category{}
	}
	var c Category
	c.ID = obj.id("id")
	c.Slug = obj.nonEmptyString("slug")
	c.Name = obj.nonEmptyString("name")
	c.CreatedAt = obj.dateTime("createdAt")
	c.UpdatedAt = obj.dateTime("updatedAt")
	return c
}

func DecodeCollection(input any) (Collection, error) {
	vs := &violations{}
	c := decodeCollection(input, "", vs)
	if err := vs.asError(); err != nil {
		return Collection{}, err
	}
	return c, nil
}

func decodeCollection(v any, path string, vs *violations) Collection {
	obj, ok := asObject(v, path, vs)
	if !ok {
		return Collection{}
	}
	var c Collection
	c.ID = obj.id("id")
	c.Slug = obj.nonEmptyString("slug")
	c.Name = obj.nonEmptyString("name")
	c.Description = obj.optionalString("description")
	c.CreatedAt = obj.dateTime("createdAt")
	c.UpdatedAt = obj.dateTime("updatedAt")
	return c
}

func DecodeSku(input any) (Sku, error) {
	vs := &violations{}
	s := decodeSku(input, "", vs)
	if err := vs.asError(); err != nil {
		return Sku{}, err
	}
	return s, nil
}

func decodeSku(v any, path string, vs *violations) Sku {
	obj, ok := asObject(v, path, vs)
	if !ok {
		return Sku{}
	}
	var s Sku
	s.ID = obj.id("id")
	s.ArtworkID = obj.id("artworkId")
	s.Code = obj.nonEmptyString("sku")
	s.IsOriginal = obj.boolDefault("isOriginal")
	s.IsDigital = obj.boolDefault("isDigital")
	s.EditionSize = obj.optionalPositiveInt("editionSize")
	s.StockQuantity = obj.nullableNonNegativeInt("stockQuantity")
	s.Price = obj.money("price")
	s.CompareAtPrice = obj.optionalMoney("compareAtPrice")
	s.CreatedAt = obj.dateTime("createdAt")
	s.UpdatedAt = obj.dateTime("updatedAt")
	return s
}

func DecodeArtwork(input any) (Artwork, error) {
	vs := &violations{}
	a := decodeArtwork(input, "", vs)
	if err := vs.asError(); err != nil {
		return Artwork{}, err
	}
	return a, nil
}

func decodeArtwork(v any, path string, vs *violations) Artwork {
	obj, ok := asObject(v, path, vs)
	if !ok {
		return Artwork{}
	}
	var a Artwork
	a.ID = obj.id("id")
	a.ArtistID = obj.id("artistId")
	a.Title = obj.nonEmptyString("title")
	a.Description = obj.optionalString("description")
	a.Year = obj.optionalInt("year")
	a.Materials = obj.stringArrayDefault("materials")
	if raw, ok := obj.get("dimensions"); ok {
		d := decodeDimensions(raw, obj.key("dimensions"), vs)
		a.Dimensions = &d
	}
	a.Tags = obj.stringArrayDefault("tags")
	a.CategoryIDs = obj.idArrayDefault("categoryIds")
	a.CollectionIDs = obj.idArrayDefault("collectionIds")
	a.Media = decodeMediaArray(obj, "media")
	a.Skus = decodeSkuArray(obj, "skus")
	a.CreatedAt = obj.dateTime("createdAt")
	a.UpdatedAt = obj.dateTime("updatedAt")
	return a
}

func decodeMediaArray(o object, name string) []MediaAsset {
	out := []MediaAsset{}
	for i, el := range o.elementsDefault(name) {
		out = append(out, decodeMediaAsset(el, indexPath(o.key(name), i), o.vs))
	}
	return out
}

func decodeSkuArray(o object, name string) []Sku {
	out := []Sku{}
	for i, el := range o.elementsDefault(name) {
		out = append(out, decodeSku(el, indexPath(o.key(name), i), o.vs))
	}
	return out
}
