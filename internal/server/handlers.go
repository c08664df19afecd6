package server

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelierhq/atelier/internal/schema"
)

// bindBody reads the request body as an untyped JSON value so the schema
// decoders can report every violation, not just the first binding failure.
func bindBody(c *gin.Context) (any, bool) {
	var body any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_json",
			"message": err.Error(),
		})
		return nil, false
	}
	return body, true
}

// respondInvalid writes the full violation set of a failed decode.
func respondInvalid(c *gin.Context, err error) {
	var verr *schema.Error
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "validation_failed",
			"violations": verr.Violations,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
}

func respondStorageError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "storage_failed",
		"message": err.Error(),
	})
}

func respondLookup(c *gin.Context, value any, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	case err != nil:
		respondStorageError(c, err)
	default:
		c.JSON(http.StatusOK, value)
	}
}

// validateEntity runs a body through the named entity decoder without
// persisting anything. Useful for admin tooling and import dry runs.
func (s *Server) validateEntity(c *gin.Context) {
	name := c.Param("entity")
	decode, ok := entityDecoders[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "unknown_entity",
			"message": "no validator named " + name,
		})
		return
	}

	body, ok := bindBody(c)
	if !ok {
		return
	}
	value, err := decode(body)
	if err != nil {
		respondInvalid(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "value": value})
}

// entityDecoders maps URL entity names to their schema decoders.
var entityDecoders = map[string]func(any) (any, error){
	"artist":      wrap(schema.DecodeArtist),
	"category":    wrap(schema.DecodeCategory),
	"collection":  wrap(schema.DecodeCollection),
	"sku":         wrap(schema.DecodeSku),
	"artwork":     wrap(schema.DecodeArtwork),
	"address":     wrap(schema.DecodeAddress),
	"customer":    wrap(schema.DecodeCustomer),
	"cart":        wrap(schema.DecodeCart),
	"order":       wrap(schema.DecodeOrder),
	"media-asset": wrap(schema.DecodeMediaAsset),
	"money":       wrap(schema.DecodeMoney),
	"dimensions":  wrap(schema.DecodeDimensions),
}

func wrap[T any](decode func(any) (T, error)) func(any) (any, error) {
	return func(v any) (any, error) {
		return decode(v)
	}
}

func (s *Server) createArtist(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	artist, err := schema.DecodeArtist(body)
	if err != nil {
		respondInvalid(c, err)
		return
	}
	if err := s.catalog.SaveArtist(artist); err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artist)
}

func (s *Server) getArtist(c *gin.Context) {
	artist, err := s.catalog.GetArtist(c.Param("id"))
	respondLookup(c, artist, err)
}

func (s *Server) createCategory(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	category, err := schema.DecodeCategory(body)
	if err != nil {
		respondInvalid(c, err)
		return
	}
	if err := s.catalog.SaveCategory(category); err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (s *Server) createCollection(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	collection, err := schema.DecodeCollection(body)
	if err != nil {
		respondInvalid(c, err)
		return
	}
	if err := s.catalog.SaveCollection(collection); err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, collection)
}

func (s *Server) createArtwork(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	artwork, err := schema.DecodeArtwork(body)
	if err != nil {
		respondInvalid(c, err)
		return
	}
	if err := s.catalog.SaveArtwork(artwork); err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artwork)
}

func (s *Server) getArtwork(c *gin.Context) {
	artwork, err := s.catalog.GetArtwork(c.Param("id"))
	respondLookup(c, artwork, err)
}

func (s *Server) createCustomer(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	customer, err := schema.DecodeCustomer(body)
	if err != nil {
		respondInvalid(c, err)
		return
	}
	if err := s.orders.SaveCustomer(customer); err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (s *Server) createCart(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	cart, err := schema.DecodeCart(body)
	if err != nil {
		respondInvalid(c, err)
		return
	}
	if err := s.orders.SaveCart(cart); err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cart)
}

func (s *Server) createOrder(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	order, err := schema.DecodeOrder(body)
	if err != nil {
		respondInvalid(c, err)
		return
	}
	if err := s.orders.SaveOrder(order); err != nil {
		respondStorageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := s.orders.GetOrder(c.Param("id"))
	respondLookup(c, order, err)
}
