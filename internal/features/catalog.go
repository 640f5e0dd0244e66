package features

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ian-shakespeare/hsasm/internal/config"
	"github.com/ian-shakespeare/hsasm/internal/operands"
	"github.com/ian-shakespeare/hsasm/pkg/iterator"
	"github.com/samber/lo"
)

type Instruction struct {
	Name   string `json:"name"`
	Syntax string `json:"syntax"`
	Detail string `json:"detail"`
}

// Condition is a branch condition code.
type Condition struct {
	Suffix      string `json:"suffix"`
	Flags       string `json:"flags"`
	Description string `json:"description"`
}

type Register struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

// Catalog is the instruction set description the features work from.
type Catalog struct {
	Families     operands.Families
	Instructions []Instruction
	Conditions   []Condition
	Registers    []Register
}

// Mnemonics lists every instruction, conditional branches included.
func (c Catalog) Mnemonics() []Instruction {
	ret := append([]Instruction(nil), c.Instructions...)
	for _, cond := range c.Conditions {
		name := "B" + cond.Suffix
		ret = append(ret, Instruction{
			Name:   name,
			Syntax: name + " imm",
			Detail: fmt.Sprintf("Branch if %s to PC+imm. Checks flag: %s.", cond.Description, cond.Flags),
		})
	}
	for _, cond := range c.Conditions {
		name := "B" + cond.Suffix + "L"
		ret = append(ret, Instruction{
			Name:   name,
			Syntax: name + " imm",
			Detail: fmt.Sprintf("Branch if %s to PC+imm, then set LR to return address. Checks flag: %s.", cond.Description, cond.Flags),
		})
	}
	return ret
}

type GetCatalog func() (Catalog, error)

func (Module) GetCatalog(
	loader config.Loader,
) GetCatalog {
	return sync.OnceValues(func() (c Catalog, err error) {
		if c.Families, err = config.First[operands.Families](loader, "families"); err != nil {
			return
		}
		if err = c.Families.Validate(); err != nil {
			return
		}
		// every layer contributes instructions; a name defined in a higher
		// priority layer shadows the same name below it
		layers, errs := iterator.Collect2(config.All[[]Instruction](loader, "instructions"))
		if err = errors.Join(errs...); err != nil {
			return
		}
		c.Instructions = lo.UniqBy(lo.Flatten(layers), func(i Instruction) string {
			return strings.ToUpper(i.Name)
		})
		if c.Conditions, err = config.First[[]Condition](loader, "conditions"); err != nil {
			return
		}
		if c.Registers, err = config.First[[]Register](loader, "registers"); err != nil {
			return
		}
		general, err := config.First[int](loader, "generalRegisters")
		if err != nil {
			return
		}
		c.Registers = append(c.Registers, lo.Times(general, func(i int) Register {
			return Register{
				Name:   fmt.Sprintf("r%d", i),
				Detail: "General purpose register",
			}
		})...)
		return
	})
}
