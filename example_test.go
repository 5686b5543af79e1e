package fondue_test

import (
	"fmt"
	"time"

	"github.com/ParkBlake/fondue"
)

func ExampleCache_GetOrCompute() {
	cc := fondue.New[string, string](fondue.Options{
		Name:   "greetings",
		Policy: fondue.PolicyLRU(128),
	})

	loads := 0
	load := func() (string, error) {
		loads++
		return "hello, fondue", nil
	}

	v1, _ := cc.GetOrCompute("greeting", load)
	v2, _ := cc.GetOrCompute("greeting", load)

	fmt.Println(v1)
	fmt.Println(v2)
	fmt.Println("loads:", loads)
	// Output:
	// hello, fondue
	// hello, fondue
	// loads: 1
}

func ExampleRegistry() {
	reg := fondue.NewRegistry(fondue.RegistryOptions{})

	// Same namespace and policy: one shared cache.
	a := reg.Cache("users", fondue.PolicyLRU(100))
	b := reg.Cache("users", fondue.PolicyLRU(100))
	a.Insert("1", "ada")

	v, ok := b.TryGet("1")
	fmt.Println(v, ok)
	fmt.Println("caches:", reg.Len())
	fmt.Println("name:", a.Name())
	// Output:
	// ada true
	// caches: 1
	// name: users::lru(100)
}

func ExampleGetWithTTL() {
	reg := fondue.NewRegistry(fondue.RegistryOptions{})

	type weather struct {
		City string `json:"city"`
		Temp int    `json:"temp"`
	}

	w, err := fondue.GetWithTTL(reg, "weather", "oslo", 10*time.Minute, fondue.TTLFixed,
		func() (weather, error) {
			return weather{City: "oslo", Temp: -3}, nil
		})
	if err != nil {
		fmt.Println("lookup failed:", err)
		return
	}
	fmt.Printf("%s: %d\n", w.City, w.Temp)
	// Output:
	// oslo: -3
}

func ExampleParseDuration() {
	for _, s := range []string{"500ms", "1.5h", "2 days"} {
		d, err := fondue.ParseDuration(s)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(d)
	}
	// Output:
	// 500ms
	// 1h30m0s
	// 48h0m0s
}
