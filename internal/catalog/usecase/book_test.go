package usecase

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"bookrack/internal/catalog/entity"
)

func TestBookCreate(t *testing.T) {
	t.Run("stores a book owned by the caller", func(t *testing.T) {
		fx := newFixture(t)

		out, err := fx.uc.BookCreate(authCtx(1), BookCreateInput{
			Title:  "  The Go Programming Language  ",
			Author: "Donovan & Kernighan",
			Genre:  "Programming",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Title != "The Go Programming Language" {
			t.Fatalf("title = %q, want trimmed title", out.Title)
		}
		if out.Genre != "Programming" {
			t.Fatalf("genre = %q", out.Genre)
		}

		stored, ok := fx.repo.books[out.ID]
		if !ok {
			t.Fatal("book was not stored")
		}
		if stored.UserID != 1 {
			t.Fatalf("owner = %d, want 1", stored.UserID)
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		fx := newFixture(t)

		_, err := fx.uc.BookCreate(authCtx(1), BookCreateInput{Title: "", Author: "", Genre: ""})

		gerr := assertGoError(t, err)
		if gerr.StatusCode() != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", gerr.StatusCode())
		}
	})

	t.Run("rejects unauthenticated callers", func(t *testing.T) {
		fx := newFixture(t)

		_, err := fx.uc.BookCreate(context.Background(), BookCreateInput{Title: "T", Author: "A", Genre: "G"})

		gerr := assertGoError(t, err)
		if gerr.StatusCode() != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", gerr.StatusCode())
		}
	})
}

func TestBookList(t *testing.T) {
	t.Run("returns only the caller's books", func(t *testing.T) {
		fx := newFixture(t)
		fx.repo.books[1] = entity.Book{ID: 1, UserID: 1, Title: "Mine", CreatedAt: time.Now()}
		fx.repo.books[2] = entity.Book{ID: 2, UserID: 2, Title: "Theirs", CreatedAt: time.Now()}

		out, err := fx.uc.BookList(authCtx(1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Books) != 1 {
			t.Fatalf("books = %d, want 1", len(out.Books))
		}
		if out.Books[0].Title != "Mine" {
			t.Fatalf("title = %q", out.Books[0].Title)
		}
	})

	t.Run("presigns cover urls only for books with covers", func(t *testing.T) {
		fx := newFixture(t)
		fx.storage.objects["covers/1"] = []byte("img")
		fx.repo.books[1] = entity.Book{ID: 1, UserID: 1, Title: "With", CoverKey: "covers/1", CreatedAt: time.Now()}
		fx.repo.books[2] = entity.Book{ID: 2, UserID: 1, Title: "Without", CreatedAt: time.Now().Add(-time.Hour)}

		out, err := fx.uc.BookList(authCtx(1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Books) != 2 {
			t.Fatalf("books = %d, want 2", len(out.Books))
		}
		if !strings.Contains(out.Books[0].CoverURL, "covers/1") {
			t.Fatalf("cover url = %q", out.Books[0].CoverURL)
		}
		if out.Books[1].CoverURL != "" {
			t.Fatalf("cover url = %q, want empty", out.Books[1].CoverURL)
		}
	})

	t.Run("returns an empty catalog without error", func(t *testing.T) {
		fx := newFixture(t)

		out, err := fx.uc.BookList(authCtx(1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Books) != 0 {
			t.Fatalf("books = %d, want 0", len(out.Books))
		}
	})
}

func TestBookDelete(t *testing.T) {
	t.Run("deletes the book and its cover", func(t *testing.T) {
		fx := newFixture(t)
		fx.storage.objects["covers/1"] = []byte("img")
		fx.repo.books[1] = entity.Book{ID: 1, UserID: 1, CoverKey: "covers/1"}

		if err := fx.uc.BookDelete(authCtx(1), BookDeleteInput{ID: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := fx.repo.books[1]; ok {
			t.Fatal("book was not deleted")
		}
		if _, ok := fx.storage.objects["covers/1"]; ok {
			t.Fatal("cover object was not deleted")
		}
	})

	t.Run("does not reveal other users' books", func(t *testing.T) {
		fx := newFixture(t)
		fx.repo.books[1] = entity.Book{ID: 1, UserID: 2}

		err := fx.uc.BookDelete(authCtx(1), BookDeleteInput{ID: 1})

		gerr := assertGoError(t, err)
		if gerr.StatusCode() != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", gerr.StatusCode())
		}
		if gerr.Msg() != "Book not found" {
			t.Fatalf("message = %q", gerr.Msg())
		}
		if _, ok := fx.repo.books[1]; !ok {
			t.Fatal("other user's book must not be deleted")
		}
	})

	t.Run("reports not found for a missing book", func(t *testing.T) {
		fx := newFixture(t)

		err := fx.uc.BookDelete(authCtx(1), BookDeleteInput{ID: 99})

		gerr := assertGoError(t, err)
		if gerr.StatusCode() != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", gerr.StatusCode())
		}
	})
}

func TestBookCoverUpload(t *testing.T) {
	t.Run("stores the image and records the key", func(t *testing.T) {
		fx := newFixture(t)
		fx.repo.books[1] = entity.Book{ID: 1, UserID: 1}

		out, err := fx.uc.BookCoverUpload(authCtx(1), BookCoverUploadInput{
			BookID:      1,
			ContentType: "image/png",
			File:        strings.NewReader("png-bytes"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.CoverURL, "covers/1") {
			t.Fatalf("cover url = %q", out.CoverURL)
		}
		if fx.repo.books[1].CoverKey != "covers/1" {
			t.Fatalf("cover key = %q", fx.repo.books[1].CoverKey)
		}
		if string(fx.storage.objects["covers/1"]) != "png-bytes" {
			t.Fatal("object content mismatch")
		}
	})

	t.Run("overwrites the previous cover in place", func(t *testing.T) {
		fx := newFixture(t)
		fx.repo.books[1] = entity.Book{ID: 1, UserID: 1, CoverKey: "covers/1"}
		fx.storage.objects["covers/1"] = []byte("old")

		_, err := fx.uc.BookCoverUpload(authCtx(1), BookCoverUploadInput{
			BookID:      1,
			ContentType: "image/jpeg",
			File:        strings.NewReader("new"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(fx.storage.objects["covers/1"]) != "new" {
			t.Fatal("cover was not overwritten")
		}
	})

	t.Run("rejects non-image uploads", func(t *testing.T) {
		fx := newFixture(t)
		fx.repo.books[1] = entity.Book{ID: 1, UserID: 1}

		_, err := fx.uc.BookCoverUpload(authCtx(1), BookCoverUploadInput{
			BookID:      1,
			ContentType: "application/pdf",
			File:        strings.NewReader("%PDF"),
		})

		gerr := assertGoError(t, err)
		if gerr.StatusCode() != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", gerr.StatusCode())
		}
	})

	t.Run("rejects oversized images and removes the object", func(t *testing.T) {
		fx := newFixture(t)
		fx.repo.books[1] = entity.Book{ID: 1, UserID: 1}

		_, err := fx.uc.BookCoverUpload(authCtx(1), BookCoverUploadInput{
			BookID:      1,
			ContentType: "image/png",
			File:        strings.NewReader(strings.Repeat("x", 100)),
		})

		gerr := assertGoError(t, err)
		if gerr.Msg() != "Cover image is too large" {
			t.Fatalf("message = %q", gerr.Msg())
		}
		if _, ok := fx.storage.objects["covers/1"]; ok {
			t.Fatal("oversized object should be removed")
		}
		if fx.repo.books[1].CoverKey != "" {
			t.Fatal("cover key must not be recorded for a rejected upload")
		}
	})

	t.Run("does not reveal other users' books", func(t *testing.T) {
		fx := newFixture(t)
		fx.repo.books[1] = entity.Book{ID: 1, UserID: 2}

		_, err := fx.uc.BookCoverUpload(authCtx(1), BookCoverUploadInput{
			BookID:      1,
			ContentType: "image/png",
			File:        strings.NewReader("img"),
		})

		gerr := assertGoError(t, err)
		if gerr.StatusCode() != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", gerr.StatusCode())
		}
	})
}
