// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gotomicro/ego/core/elog"
	"github.com/lukasjarosch/go-docx"
	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

type Format string

const (
	FormatUnknown Format = ""
	FormatTXT     Format = "txt"
	FormatPDF     Format = "pdf"
	FormatDOCX    Format = "docx"
	FormatZIP     Format = "zip"
)

// FormatOf 按照扩展名判断格式，大小写不敏感
func FormatOf(filename string) Format {
	switch strings.ToLower(path.Ext(filename)) {
	case ".txt", ".md":
		return FormatTXT
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".zip":
		return FormatZIP
	default:
		return FormatUnknown
	}
}

// File 压缩包里面的一个文件
type File struct {
	Name string
	Data []byte
}

// Decoder 把文档转成纯文本
// 不认识的格式或者解析失败都返回空字符串，调用方按照空文本处理
type Decoder interface {
	Decode(format Format, data []byte) string
	// Unzip 展开压缩包，只返回认识的格式，嵌套的压缩包会递归展开
	Unzip(data []byte) ([]File, error)
}

var (
	// ErrArchiveTooLarge 解压之后的总大小超过上限
	ErrArchiveTooLarge = errors.New("压缩包解压之后太大")
	// ErrNoPDFText 扫描件或者没有设置 unipdf license 都会出现
	ErrNoPDFText = errors.New("PDF 里面没有可以提取的文本")
)

type decodeFunc func(data []byte) (string, error)

type decoder struct {
	decoders map[Format]decodeFunc
	// maxFiles 压缩包里面最多处理多少个文件，嵌套的压缩包一起算
	maxFiles int
	// maxBytes 一次展开最多读出多少字节，嵌套的压缩包一起算
	maxBytes int64
	// maxDepth 嵌套压缩包的最大层数
	maxDepth int
	logger   *elog.Component
}

func NewDecoder(maxFiles int, maxBytes int64) Decoder {
	d := &decoder{
		maxFiles: maxFiles,
		maxBytes: maxBytes,
		maxDepth: 3,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("intake.decoder")),
	}
	d.decoders = map[Format]decodeFunc{
		FormatTXT:  decodeTXT,
		FormatPDF:  decodePDF,
		FormatDOCX: decodeDOCX,
		FormatZIP:  d.decodeZIP,
	}
	return d
}

func (d *decoder) Decode(format Format, data []byte) string {
	fn, ok := d.decoders[format]
	if !ok {
		return ""
	}
	text, err := fn(data)
	if err != nil {
		d.logger.Warn("解析文档失败", elog.String("format", string(format)), elog.FieldErr(err))
		return ""
	}
	return strings.TrimSpace(text)
}

// unzipState 一次 Unzip 调用里面所有层级共享
type unzipState struct {
	files []File
	read  int64
}

func (d *decoder) Unzip(data []byte) ([]File, error) {
	st := &unzipState{}
	err := d.unzip(data, 0, st)
	return st.files, err
}

func (d *decoder) full(st *unzipState) bool {
	return len(st.files) >= d.maxFiles
}

func (d *decoder) unzip(data []byte, depth int, st *unzipState) error {
	if depth >= d.maxDepth {
		return fmt.Errorf("压缩包嵌套超过 %d 层", d.maxDepth)
	}
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("打开压缩包失败: %w", err)
	}
	for _, f := range reader.File {
		if d.full(st) {
			return nil
		}
		if f.FileInfo().IsDir() || isHidden(f.Name) {
			continue
		}
		format := FormatOf(f.Name)
		if format == FormatUnknown {
			continue
		}
		content, err := d.readZipFile(f, st)
		if errors.Is(err, ErrArchiveTooLarge) {
			return err
		}
		if err != nil {
			d.logger.Warn("读取压缩包文件失败", elog.String("name", f.Name), elog.FieldErr(err))
			continue
		}
		if format == FormatZIP {
			err = d.unzip(content, depth+1, st)
			if errors.Is(err, ErrArchiveTooLarge) {
				return err
			}
			if err != nil {
				d.logger.Warn("展开嵌套压缩包失败", elog.String("name", f.Name), elog.FieldErr(err))
			}
			continue
		}
		st.files = append(st.files, File{Name: path.Base(f.Name), Data: content})
	}
	return nil
}

// decodeZIP 所有文件的文本拼在一起
func (d *decoder) decodeZIP(data []byte) (string, error) {
	files, err := d.Unzip(data)
	if err != nil {
		return "", err
	}
	texts := make([]string, 0, len(files))
	for _, f := range files {
		if text := d.Decode(FormatOf(f.Name), f.Data); text != "" {
			texts = append(texts, text)
		}
	}
	return strings.Join(texts, "\n\n"), nil
}

// readZipFile 头部记录的大小可以伪造，所以实际读的时候也要限制
func (d *decoder) readZipFile(f *zip.File, st *unzipState) ([]byte, error) {
	remaining := d.maxBytes - st.read
	if f.UncompressedSize64 > uint64(max(remaining, 0)) {
		return nil, fmt.Errorf("%w: %s 解压之后 %d 字节，剩余额度 %d 字节",
			ErrArchiveTooLarge, f.Name, f.UncompressedSize64, remaining)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	content, err := io.ReadAll(io.LimitReader(rc, remaining+1))
	st.read += int64(len(content))
	if int64(len(content)) > remaining {
		return nil, fmt.Errorf("%w: 超过 %d 字节", ErrArchiveTooLarge, d.maxBytes)
	}
	return content, err
}

// isHidden macOS 打包的时候会带上 __MACOSX 和 ._ 开头的文件
func isHidden(name string) bool {
	base := path.Base(name)
	return strings.HasPrefix(name, "__MACOSX/") || strings.HasPrefix(base, ".")
}

func decodeTXT(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return "", fmt.Errorf("不是 UTF-8 文本")
	}
	return string(data), nil
}

var (
	pdfLicenseOnce sync.Once
	pdfLicenseErr  error
)

// SetPDFLicense 进程里面只设置一次，没有 license 的时候 unipdf 拒绝提取文本
func SetPDFLicense(key string) error {
	pdfLicenseOnce.Do(func() {
		pdfLicenseErr = license.SetMeteredKey(key)
	})
	return pdfLicenseErr
}

// decodePDF 一页都没有解析出文本的时候返回最后一个错误，方便排查 license 之类的问题
func decodePDF(data []byte) (string, error) {
	reader, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("读取 PDF 失败: %w", err)
	}
	numPages, err := reader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("获取页数失败: %w", err)
	}
	var (
		sb      strings.Builder
		lastErr error
	)
	for i := 1; i <= numPages; i++ {
		text, err := pageText(reader, i)
		if err != nil {
			lastErr = fmt.Errorf("第 %d 页: %w", i, err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	if sb.Len() > 0 {
		return sb.String(), nil
	}
	if lastErr != nil {
		return "", fmt.Errorf("%w: %w", ErrNoPDFText, lastErr)
	}
	return "", ErrNoPDFText
}

func pageText(reader *model.PdfReader, num int) (string, error) {
	page, err := reader.GetPage(num)
	if err != nil {
		return "", err
	}
	ex, err := extractor.New(page)
	if err != nil {
		return "", err
	}
	return ex.ExtractText()
}

func decodeDOCX(data []byte) (string, error) {
	doc, err := docx.OpenBytes(data)
	if err != nil {
		return "", fmt.Errorf("打开 docx 失败: %w", err)
	}
	defer doc.Close()
	content := doc.GetFile(docx.DocumentXml)
	if content == nil {
		return "", fmt.Errorf("docx 里面没有 %s", docx.DocumentXml)
	}
	return paragraphsOf(content)
}

// paragraphsOf 取出 w:p 里面所有 w:t 的文本，一个段落一行，忽略空段落
func paragraphsOf(documentXML []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(documentXML))
	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("解析 document.xml 失败: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				current.WriteString("\t")
			case "br":
				current.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if p := strings.TrimSpace(current.String()); p != "" {
					paragraphs = append(paragraphs, p)
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}
