package domain

import "github.com/iWorld-y/fin_radar/app/classifier/pkg/taxonomy"

// ClassifyInput 一次分类请求
type ClassifyInput struct {
	Text string
	HTML string
	// Temperature 与 TopK 为空时使用配置默认值
	Temperature *float64
	TopK        *int
	Save        bool
}

// ClassifyOutput 分类结果，Text 为请求原文，仅 HTML 输入时为抽取出的正文
type ClassifyOutput struct {
	Text   string
	Result *taxonomy.Result
	Record *Record
}
