package view

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Load 解析内嵌的全部页面模板
// 每个文件通过{{ define }}声明页面名(list-authors、book-form、error等)
func Load() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

// MustLoad 同Load,解析失败时panic(模板随二进制发布,失败即编程错误)
func MustLoad() *template.Template {
	return template.Must(Load())
}
