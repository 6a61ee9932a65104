package cache

import (
	"strings"
	"sync"
	"time"
)

// entry guarda um valor com sua expiração. As entradas pertencem
// exclusivamente ao cache: quem lê nunca deve mutar o valor in place,
// sempre substituir via Set.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache é um cache em memória com TTL por entrada e capacidade máxima.
// A expiração é verificada de forma preguiçosa na leitura; quando a
// capacidade é atingida, a entrada inserida há mais tempo é removida
// antes da nova inserção (ordem de inserção, não LRU).
type Cache[V any] struct {
	mutex    sync.Mutex
	capacity int
	entries  map[string]entry[V]
	order    []string
}

// New cria um cache com a capacidade informada. Capacidade zero ou
// negativa desabilita o limite.
func New[V any](capacity int) *Cache[V] {
	return &Cache[V]{
		capacity: capacity,
		entries:  make(map[string]entry[V]),
		order:    make([]string, 0),
	}
}

// Get retorna o valor da chave. Uma entrada expirada é tratada como
// ausente e removida na hora.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	var zero V

	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}

	if time.Now().After(e.expiresAt) {
		c.remove(key)
		return zero, false
	}

	return e.value, true
}

// Set grava o valor com o TTL informado. Se a chave já existe, o valor
// e a expiração são substituídos mantendo a posição original de
// inserção. Se o cache está cheio, exatamente uma entrada (a mais
// antiga) é removida antes da inserção.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = entry[V]{value: value, expiresAt: time.Now().Add(ttl)}
		return
	}

	if c.capacity > 0 && len(c.order) >= c.capacity {
		c.remove(c.order[0])
	}

	c.entries[key] = entry[V]{value: value, expiresAt: time.Now().Add(ttl)}
	c.order = append(c.order, key)
}

// Delete remove a chave, se existir
func (c *Cache[V]) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.remove(key)
}

// DeletePrefix remove todas as chaves com o prefixo informado e retorna
// quantas foram removidas. Usado para invalidar famílias de chaves
// (ex.: todas as listagens de campanhas) após uma mutação.
func (c *Cache[V]) DeletePrefix(prefix string) int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	removed := 0
	for _, key := range append([]string(nil), c.order...) {
		if strings.HasPrefix(key, prefix) {
			c.remove(key)
			removed++
		}
	}

	return removed
}

// Has informa se a chave existe e ainda não expirou
func (c *Cache[V]) Has(key string) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}

	if time.Now().After(e.expiresAt) {
		c.remove(key)
		return false
	}

	return true
}

// Len retorna a quantidade de entradas armazenadas, incluindo as que
// expiraram mas ainda não foram varridas
func (c *Cache[V]) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return len(c.entries)
}

// Sweep remove todas as entradas expiradas e retorna quantas foram
// removidas. A correção do cache não depende da varredura; ela só
// limita o uso de memória entre leituras.
func (c *Cache[V]) Sweep() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	removed := 0

	for _, key := range append([]string(nil), c.order...) {
		if e, ok := c.entries[key]; ok && now.After(e.expiresAt) {
			c.remove(key)
			removed++
		}
	}

	return removed
}

// remove exclui a chave do mapa e da ordem de inserção.
// Deve ser chamado com o mutex já adquirido.
func (c *Cache[V]) remove(key string) {
	if _, ok := c.entries[key]; !ok {
		return
	}

	delete(c.entries, key)

	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
