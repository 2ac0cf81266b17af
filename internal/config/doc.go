// Package config 读取 dotlink 的 TOML 配置文件并把每个表转换为 LinkSpec。
//
// 配置文件示例:
//
//	[gitconfig]
//	type = "file"
//	dot_path = 'D:\dotfiles\.gitconfig'
//	loc_path = 'C:\Users\me\.gitconfig'
//
// type、dot_path、loc_path 都必须是字符串，其余字段会被忽略。
package config
