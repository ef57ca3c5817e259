package loader

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"familytree/internal/model"
	"familytree/internal/service"
)

const dateLayout = "2006-01-02"

// TreeYAML YAML家谱文件结构
type TreeYAML struct {
	Version string       `yaml:"version"`
	People  []PersonYAML `yaml:"people" validate:"required,dive"`
}

// PersonYAML YAML中的成员记录
//
// mother 和 father 必须引用前面出现过的 key，partner 可以引用任意 key。
type PersonYAML struct {
	Key       string `yaml:"key" validate:"required"`
	FirstName string `yaml:"first_name" validate:"required"`
	LastName  string `yaml:"last_name"`
	Sex       string `yaml:"sex" validate:"required,oneof=male female"`
	Born      string `yaml:"born" validate:"required,datetime=2006-01-02"`
	Died      string `yaml:"died,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Mother    string `yaml:"mother,omitempty"`
	Father    string `yaml:"father,omitempty"`
	Partner   string `yaml:"partner,omitempty"`
}

var validate = validator.New()

// LoadFile 从YAML文件加载家谱
func LoadFile(path string, tree *service.FamilyTree) error {
	f, err := os.Open(path)
	if err != nil {
		return service.NewError(service.ErrConfig, "failed to open tree file", err).WithContext("path", path)
	}
	defer f.Close()

	return Load(f, tree)
}

// Load 解析YAML并登记所有成员
//
// 所有记录校验通过后才会写入家谱，出错时家谱保持不变。
func Load(r io.Reader, tree *service.FamilyTree) error {
	var doc TreeYAML
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return service.NewError(service.ErrInvalidInput, "failed to parse tree file", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return service.NewError(service.ErrValidation, "invalid tree file", err)
	}

	byKey := make(map[string]*model.Person, len(doc.People))
	people := make([]*model.Person, 0, len(doc.People))

	for _, rec := range doc.People {
		if _, exists := byKey[rec.Key]; exists {
			return invalidRecord(rec.Key, "duplicate key")
		}

		mother, err := resolveParent(byKey, rec.Key, "mother", rec.Mother)
		if err != nil {
			return err
		}
		father, err := resolveParent(byKey, rec.Key, "father", rec.Father)
		if err != nil {
			return err
		}

		sex, err := model.ParseSex(rec.Sex)
		if err != nil {
			return invalidRecord(rec.Key, err.Error())
		}
		born, _ := time.Parse(dateLayout, rec.Born)

		p := model.NewPerson(rec.FirstName, rec.LastName, sex, born, mother, father)
		byKey[rec.Key] = p
		people = append(people, p)
	}

	for _, rec := range doc.People {
		if rec.Partner == "" {
			continue
		}
		if _, ok := byKey[rec.Partner]; !ok {
			return invalidRecord(rec.Key, fmt.Sprintf("unknown partner %q", rec.Partner))
		}
	}

	for _, p := range people {
		tree.AddPerson(p)
	}
	for _, rec := range doc.People {
		p := byKey[rec.Key]
		if rec.Partner != "" {
			tree.SetPartner(p, byKey[rec.Partner])
		}
		if rec.Died != "" {
			died, _ := time.Parse(dateLayout, rec.Died)
			tree.MarkDeceased(p, died)
		}
	}
	return nil
}

func resolveParent(byKey map[string]*model.Person, key, role, ref string) (*model.Person, error) {
	if ref == "" {
		return nil, nil
	}
	p, ok := byKey[ref]
	if !ok {
		return nil, invalidRecord(key, fmt.Sprintf("%s %q must be listed before the child", role, ref))
	}
	return p, nil
}

func invalidRecord(key, reason string) error {
	return service.NewError(service.ErrValidation, fmt.Sprintf("person %q: %s", key, reason), nil).
		WithContext("key", key)
}
