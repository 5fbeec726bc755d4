package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestUserIDFromCtx(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		id := uuid.New()
		ctx := WithUserID(context.Background(), id)

		got, ok := UserIDFromCtx(ctx)
		if !ok {
			t.Fatal("expected ok")
		}
		if got != id {
			t.Errorf("got %v, want %v", got, id)
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		got, ok := UserIDFromCtx(context.Background())
		if ok {
			t.Error("expected !ok for empty context")
		}
		if got != uuid.Nil {
			t.Errorf("got %v, want uuid.Nil", got)
		}
	})

	t.Run("nil uuid treated as missing", func(t *testing.T) {
		t.Parallel()
		ctx := WithUserID(context.Background(), uuid.Nil)
		if _, ok := UserIDFromCtx(ctx); ok {
			t.Error("expected !ok for uuid.Nil")
		}
	})
}
