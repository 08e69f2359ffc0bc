package gamestate

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/hammamikhairi/cooktrack/internal/domain"
	"github.com/hammamikhairi/cooktrack/internal/logger"
)

// Parse decodes a save document:
//
//	{
//	  "player": {
//	    "location": "FarmHouse",
//	    "position": {"x": 5, "y": 7},
//	    "items": [{"id": "(O)246", "stack": 2}, null],
//	    "cookingRecipes": ["Fried Egg"],
//	    "recipesCooked": {"194": 1},
//	    "craftingRecipes": {"Chest": 1}
//	  },
//	  "locations": [
//	    {"name": "FarmHouse", "fridge": {"items": []},
//	     "objects": [{"x": 3, "y": 4, "id": "(BC)216", "items": []}]}
//	  ]
//	}
//
// Null inventory slots are skipped. An object is a container when it has
// an "items" array.
func Parse(data []byte, log *logger.Logger) (*State, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	player := root.Get("player")
	if !player.Exists() {
		return nil, errors.New(`missing "player"`)
	}

	s := New()
	s.MoveTo(player.Get("position.x").Float(), player.Get("position.y").Float())
	s.Carry(readStacks(player.Get("items"))...)

	cooking := player.Get("cookingRecipes")
	switch {
	case cooking.IsArray():
		cooking.ForEach(func(_, v gjson.Result) bool {
			s.LearnCooking(v.String())
			return true
		})
	case cooking.IsObject():
		cooking.ForEach(func(k, _ gjson.Result) bool {
			s.LearnCooking(k.String())
			return true
		})
	}
	player.Get("recipesCooked").ForEach(func(k, v gjson.Result) bool {
		s.Cook(k.String(), int(v.Int()))
		return true
	})
	player.Get("craftingRecipes").ForEach(func(k, v gjson.Result) bool {
		s.LearnCrafting(k.String(), int(v.Int()))
		return true
	})

	var err error
	root.Get("locations").ForEach(func(_, v gjson.Result) bool {
		name := v.Get("name").String()
		if name == "" {
			err = errors.New("location without a name")
			return false
		}
		loc := NewLocation(name)
		if f := v.Get("fridge"); f.Exists() {
			loc.SetFridge(readStacks(f.Get("items"))...)
		}
		v.Get("objects").ForEach(func(_, o gjson.Result) bool {
			p := domain.Placed{
				Tile:        domain.Tile{X: int(o.Get("x").Int()), Y: int(o.Get("y").Int())},
				QualifiedID: o.Get("id").String(),
			}
			if items := o.Get("items"); items.IsArray() {
				p.Container = true
				p.Items = readStacks(items)
			}
			loc.Place(p)
			return true
		})
		s.AddLocation(loc)
		return true
	})
	if err != nil {
		return nil, err
	}

	current := player.Get("location").String()
	s.Enter(current)
	if _, ok := s.CurrentLocation(); !ok && current != "" {
		log.Warn("player location %q is not in the save", current)
	}

	log.Debug("loaded save: %d carried stacks, %d locations", len(s.carried), len(s.locations))
	return s, nil
}

// LoadFile reads a save document from disk.
func LoadFile(path string, log *logger.Logger) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s, err := Parse(data, log)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

func readStacks(arr gjson.Result) []domain.Stack {
	var out []domain.Stack
	arr.ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.Null {
			return true
		}
		id := v.Get("id").String()
		if id == "" {
			return true
		}
		qty := 1
		if st := v.Get("stack"); st.Exists() {
			qty = int(st.Int())
		}
		out = append(out, domain.Stack{ItemID: id, Quantity: qty})
		return true
	})
	return out
}
