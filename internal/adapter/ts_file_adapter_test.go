package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor(t *testing.T) {
	assert.Equal(t, DialectTypeScript, DialectFor("src/app.ts"))
	assert.Equal(t, DialectTSX, DialectFor("src/app.tsx"))
}

func TestLocalTSFileAdapter_Parse(t *testing.T) {
	a := NewLocalTSFileAdapter()

	t.Run("parses typescript", func(t *testing.T) {
		tree, err := a.Parse(context.Background(), "app.ts", []byte("const x: number = 1;\n"))
		require.NoError(t, err)
		defer tree.Close()

		root := tree.RootNode()
		require.NotNil(t, root)
		assert.False(t, root.HasError())
	})

	t.Run("parses tsx markup", func(t *testing.T) {
		tree, err := a.Parse(context.Background(), "app.tsx", []byte("const v = <div>hello</div>;\n"))
		require.NoError(t, err)
		defer tree.Close()

		root := tree.RootNode()
		require.NotNil(t, root)
		assert.False(t, root.HasError())
	})

	t.Run("invalid source still produces a tree", func(t *testing.T) {
		tree, err := a.Parse(context.Background(), "broken.ts", []byte("class {{{\n"))
		require.NoError(t, err)
		defer tree.Close()

		root := tree.RootNode()
		require.NotNil(t, root)
		assert.True(t, root.HasError())
	})

	t.Run("concurrent parses are independent", func(t *testing.T) {
		done := make(chan error, 4)

		for range 4 {
			go func() {
				tree, err := a.Parse(context.Background(), "app.ts", []byte("function f() {}\n"))
				if err == nil {
					tree.Close()
				}
				done <- err
			}()
		}

		for range 4 {
			require.NoError(t, <-done)
		}
	})
}
