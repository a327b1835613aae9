package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"asciidraw/export"
	"asciidraw/logging"
	"asciidraw/persist"
	"asciidraw/store"
)

// ready reports whether the storage backend answers.
func (s *Server) ready(c fiber.Ctx) error {
	if _, err := s.kv.Keys(context.Background()); err != nil {
		logging.Logger().Warn("storage not ready", "error", err)
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}

func (s *Server) listDocuments(c fiber.Ctx) error {
	keys, err := s.kv.Keys(context.Background())
	if err != nil {
		logging.Logger().Error("list documents failed", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "storage unavailable"})
	}
	if keys == nil {
		keys = []string{}
	}
	return c.JSON(fiber.Map{"documents": keys})
}

// createDocument stores the posted document under a fresh id. An empty
// body creates an empty document.
func (s *Server) createDocument(c fiber.Ctx) error {
	doc := store.New().Document()
	if len(c.Body()) > 0 {
		d, err := store.DecodeDocument(c.Body())
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		doc = d
	}

	id := uuid.NewString()
	if err := s.save(id, doc); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "storage unavailable"})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) getDocument(c fiber.Ctx) error {
	data, err := s.kv.Get(context.Background(), c.Params("id"))
	if err != nil {
		return s.storageError(c, err)
	}
	c.Set("Content-Type", "application/json")
	return c.Send(data)
}

// putDocument replaces a document. Legacy documents are migrated before
// they are stored.
func (s *Server) putDocument(c fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "body required"})
	}
	doc, err := store.DecodeDocument(c.Body())
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	id := c.Params("id")
	if err := s.save(id, doc); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "storage unavailable"})
	}
	return c.JSON(fiber.Map{"id": id})
}

func (s *Server) deleteDocument(c fiber.Ctx) error {
	if err := s.kv.Delete(context.Background(), c.Params("id")); err != nil {
		return s.storageError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// exportDocument renders a stored document in the format named by the last
// path segment. ?ascii=1 selects ASCII stand-ins for text.
func (s *Server) exportDocument(c fiber.Ctx) error {
	path := c.Path()
	format, err := export.ParseFormat(path[strings.LastIndexByte(path, '/')+1:])
	if err != nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	st, err := s.load(c.Params("id"))
	if err != nil {
		return s.storageError(c, err)
	}

	exporter, err := export.NewExporter(format)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if te, ok := exporter.(*export.TextExporter); ok {
		te.ASCII = c.Query("ascii") == "1"
	}

	out, err := exporter.Export(st)
	if errors.Is(err, export.ErrEmpty) {
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logging.Logger().Error("export failed", "format", string(format), "error", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "export failed"})
	}
	c.Set("Content-Type", exporter.GetContentType())
	return c.Send(out)
}

func (s *Server) save(id string, doc *store.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := s.kv.Set(context.Background(), id, data); err != nil {
		logging.Logger().Error("save document failed", "id", id, "error", err)
		return err
	}
	return nil
}

// load decodes a stored document into a fresh store.
func (s *Server) load(id string) (*store.Store, error) {
	data, err := s.kv.Get(context.Background(), id)
	if err != nil {
		return nil, err
	}
	doc, err := store.DecodeDocument(data)
	if err != nil {
		return nil, err
	}
	st := store.New()
	st.Replace(doc)
	return st, nil
}

func (s *Server) storageError(c fiber.Ctx, err error) error {
	if errors.Is(err, persist.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "document not found"})
	}
	logging.Logger().Error("storage error", "path", c.Path(), "error", err)
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "storage unavailable"})
}
