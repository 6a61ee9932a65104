package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	c := New[string](10)

	c.Set("a", "valor-a", time.Minute)

	value, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "valor-a", value)

	_, ok = c.Get("inexistente")
	assert.False(t, ok)
}

func TestCache_ExpiracaoPreguicosa(t *testing.T) {
	c := New[int](10)

	c.Set("curto", 42, 20*time.Millisecond)
	c.Set("longo", 7, time.Minute)

	// Antes do TTL a entrada deve estar disponível
	value, ok := c.Get("curto")
	assert.True(t, ok)
	assert.Equal(t, 42, value)

	time.Sleep(30 * time.Millisecond)

	// Depois do TTL a entrada é tratada como ausente e removida
	_, ok = c.Get("curto")
	assert.False(t, ok)
	assert.False(t, c.Has("curto"))

	_, ok = c.Get("longo")
	assert.True(t, ok)
}

func TestCache_CapacidadeRemoveUmaEntrada(t *testing.T) {
	c := New[int](3)

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Set("c", 3, time.Minute)

	// Inserir além da capacidade remove exatamente a entrada mais antiga
	c.Set("d", 4, time.Minute)

	assert.Equal(t, 3, c.Len())
	assert.False(t, c.Has("a"))
	assert.True(t, c.Has("b"))
	assert.True(t, c.Has("c"))
	assert.True(t, c.Has("d"))
}

func TestCache_SetSobrescreveSemMudarOrdem(t *testing.T) {
	c := New[int](2)

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	// Sobrescrever não conta como nova inserção
	c.Set("a", 10, time.Minute)
	assert.Equal(t, 2, c.Len())

	// "a" continua sendo a mais antiga e é removida na próxima inserção
	c.Set("c", 3, time.Minute)
	assert.False(t, c.Has("a"))
	assert.True(t, c.Has("b"))
	assert.True(t, c.Has("c"))
}

func TestCache_Delete(t *testing.T) {
	c := New[string](10)

	c.Set("a", "x", time.Minute)
	c.Delete("a")

	assert.False(t, c.Has("a"))
	assert.Equal(t, 0, c.Len())

	// Delete de chave inexistente não causa pânico
	c.Delete("nao-existe")
}

func TestCache_DeletePrefix(t *testing.T) {
	c := New[int](10)

	c.Set("campaigns:list:1", 1, time.Minute)
	c.Set("campaigns:list:2", 2, time.Minute)
	c.Set("campaign:abc", 3, time.Minute)

	removed := c.DeletePrefix("campaigns:list:")

	assert.Equal(t, 2, removed)
	assert.False(t, c.Has("campaigns:list:1"))
	assert.False(t, c.Has("campaigns:list:2"))
	assert.True(t, c.Has("campaign:abc"))
}

func TestCache_Sweep(t *testing.T) {
	c := New[int](10)

	c.Set("a", 1, 10*time.Millisecond)
	c.Set("b", 2, 10*time.Millisecond)
	c.Set("c", 3, time.Minute)

	time.Sleep(20 * time.Millisecond)

	removed := c.Sweep()

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Has("c"))
}

func TestCache_AcessoConcorrente(t *testing.T) {
	c := New[int](100)

	wg := sync.WaitGroup{}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("chave-%d", i%10)
			c.Set(key, i, time.Minute)
			c.Get(key)
			c.Has(key)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 10)
}
