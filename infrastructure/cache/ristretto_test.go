package cache

import (
	"context"
	"testing"
	"time"

	domaincache "github.com/felixgeelhaar/planner-go/domain/cache"
)

func TestRistretto_SetGet(t *testing.T) {
	t.Parallel()

	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "state-1", []byte("h=42"), domaincache.SetOptions{}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	v, found, err := c.Get(ctx, "state-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("Get() found = false, want true")
	}
	if string(v) != "h=42" {
		t.Errorf("Get() = %q, want %q", v, "h=42")
	}
}

func TestRistretto_GetMiss(t *testing.T) {
	t.Parallel()

	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	_, found, err := c.Get(context.Background(), "never-set")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Get() found = true, want false")
	}
}

func TestRistretto_Exists(t *testing.T) {
	t.Parallel()

	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), domaincache.SetOptions{}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	ok, err := c.Exists(ctx, "k")
	if err != nil || !ok {
		t.Errorf("Exists() = %v, %v, want true, nil", ok, err)
	}
}

func TestRistretto_Delete(t *testing.T) {
	t.Parallel()

	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), domaincache.SetOptions{}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	_, found, err := c.Get(ctx, "k")
	if err != nil || found {
		t.Errorf("Get() after Delete = found %v, err %v, want false, nil", found, err)
	}
}

func TestRistretto_Clear(t *testing.T) {
	t.Parallel()

	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), domaincache.SetOptions{}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	_, found, err := c.Get(ctx, "k")
	if err != nil || found {
		t.Errorf("Get() after Clear = found %v, err %v, want false, nil", found, err)
	}
}

func TestRistretto_SetWithTTL(t *testing.T) {
	t.Parallel()

	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), domaincache.SetOptions{TTL: time.Hour}); err != nil {
		t.Fatalf("Set() with TTL error = %v", err)
	}
	v, found, err := c.Get(ctx, "k")
	if err != nil || !found || string(v) != "v" {
		t.Errorf("Get() = %q, %v, %v, want v, true, nil", v, found, err)
	}
}

func TestRistretto_Stats(t *testing.T) {
	t.Parallel()

	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), domaincache.SetOptions{}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, _, err := c.Get(ctx, "k"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	stats := c.Stats()
	if stats.Hits < 0 || stats.Misses < 0 {
		t.Errorf("Stats() = %+v, want non-negative counters", stats)
	}
}
