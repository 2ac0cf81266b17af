// internal/config/config.go
package config

import (
	stderrors "errors"
	"os"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"dotlink/internal/errors"
	"dotlink/internal/logging"
)

// 配置文件中每个条目必须包含的字段名。
const (
	FieldType    = "type"
	FieldDotPath = "dot_path"
	FieldLocPath = "loc_path"
)

// LinkKind 是链接类型，只有文件（硬链接）和目录（junction）两种。
type LinkKind int

// 零值不是合法的类型，避免 LinkSpec{} 被当成硬链接
const (
	KindFile LinkKind = iota + 1
	KindDirectory
)

// kindNames 是 type 字段允许的写法，严格匹配。
var kindNames = map[string]LinkKind{
	"file":      KindFile,
	"dir":       KindDirectory,
	"directory": KindDirectory,
	"junction":  KindDirectory,
}

// ParseLinkKind 把 type 字段的值转换为 LinkKind。
func ParseLinkKind(s string) (LinkKind, bool) {
	k, ok := kindNames[s]
	return k, ok
}

func (k LinkKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// LinkSpec 描述一个需要创建的链接。
type LinkSpec struct {
	Name       string   // 配置表中的键
	Kind       LinkKind // 链接类型
	SourcePath string   // dot_path：dotfile 实际所在位置
	TargetPath string   // loc_path：需要放置链接的位置
}

// LoadFile 读取并解析 TOML 文件，返回通用的值树（根为 map[string]any）。
func LoadFile(path string) (any, error) {
	logger := logging.GetLogger("config").With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigIO, "无法读取配置文件 '%s'", path).
			WithDetail("path", path)
	}

	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		parseErr := errors.Wrapf(err, errors.ErrConfigParse, "配置文件 '%s' 不是有效的 TOML", path).
			WithDetail("path", path)
		var decodeErr *toml.DecodeError
		if stderrors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			parseErr.WithDetail("row", row).WithDetail("column", col)
		}
		return nil, parseErr
	}
	if root == nil {
		root = map[string]any{}
	}

	logger.Debug().Int("entries", len(root)).Msg("Config file loaded")
	return root, nil
}

// Parse 把 LoadFile 得到的值树转换为 LinkSpec 列表。
// 任一条目校验失败都会返回错误且不返回任何 LinkSpec。
func Parse(root any) ([]LinkSpec, error) {
	table, ok := root.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrConfigSchema, "无效的配置文件 (invalid config file)")
	}

	// 按键排序，保证每次运行顺序一致
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	specs := make([]LinkSpec, 0, len(names))
	for _, name := range names {
		spec, err := parseEntry(name, table[name])
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Load 读取并解析配置文件。
func Load(path string) ([]LinkSpec, error) {
	root, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(root)
}

func parseEntry(name string, value any) (LinkSpec, error) {
	entry, ok := value.(map[string]any)
	if !ok {
		return LinkSpec{}, errors.Newf(errors.ErrConfigSchema, "条目 '%s' 必须是一个表", name).
			WithDetail("name", name)
	}

	typeName, err := requireString(entry, name, FieldType)
	if err != nil {
		return LinkSpec{}, err
	}
	dotPath, err := requireString(entry, name, FieldDotPath)
	if err != nil {
		return LinkSpec{}, err
	}
	locPath, err := requireString(entry, name, FieldLocPath)
	if err != nil {
		return LinkSpec{}, err
	}

	kind, ok := ParseLinkKind(typeName)
	if !ok {
		return LinkSpec{}, errors.Newf(errors.ErrConfigSchema,
			"条目 '%s' 的 %s 字段值 '%s' 无效，只支持 file 或 dir/directory/junction", name, FieldType, typeName).
			WithDetail("name", name).
			WithDetail("field", FieldType)
	}

	return LinkSpec{
		Name:       name,
		Kind:       kind,
		SourcePath: dotPath,
		TargetPath: locPath,
	}, nil
}

// requireString 取出字符串字段，字段缺失或类型不对时返回 SchemaError。
func requireString(entry map[string]any, name, field string) (string, error) {
	raw, exists := entry[field]
	if !exists {
		return "", errors.Newf(errors.ErrConfigSchema, "条目 '%s' 缺少 %s 字段", name, field).
			WithDetail("name", name).
			WithDetail("field", field)
	}
	s, ok := raw.(string)
	if !ok {
		return "", errors.Newf(errors.ErrConfigSchema, "条目 '%s' 的 %s 字段无效，必须是字符串 (实际为 %T)", name, field, raw).
			WithDetail("name", name).
			WithDetail("field", field)
	}
	return s, nil
}
