package main

import (
	"fmt"
	"io"

	"github.com/omeyang/xksuid/pkg/util/xksuid"
)

// templateData 模板可引用的字段
type templateData struct {
	String    string
	Raw       string
	Time      string
	Timestamp uint64
	Payload   string
	Hash      uint64
}

// printer 按选定格式输出一个 ID
type printer func(w io.Writer, id xksuid.ID) error

func (r *resolved) printer() printer {
	switch r.Format {
	case formatInspect:
		return func(w io.Writer, id xksuid.ID) error {
			_, err := fmt.Fprintln(w, id.Inspect(r.loc))
			return err
		}
	case formatTime:
		return func(w io.Writer, id xksuid.ID) error {
			_, err := fmt.Fprintln(w, id.FormatTime(r.loc))
			return err
		}
	case formatTimestamp:
		return func(w io.Writer, id xksuid.ID) error {
			_, err := fmt.Fprintln(w, id.Timestamp())
			return err
		}
	case formatPayload:
		// 原始字节，不追加换行
		return func(w io.Writer, id xksuid.ID) error {
			_, err := w.Write(id.Payload())
			return err
		}
	case formatRaw:
		return func(w io.Writer, id xksuid.ID) error {
			_, err := w.Write(id.Bytes())
			return err
		}
	case formatTemplate:
		return func(w io.Writer, id xksuid.ID) error {
			data := templateData{
				String:    id.String(),
				Raw:       id.Raw(),
				Time:      id.FormatTime(r.loc),
				Timestamp: id.Timestamp(),
				Payload:   id.PayloadHex(),
				Hash:      id.Hash(),
			}
			if err := r.tmpl.Execute(w, data); err != nil {
				return fmt.Errorf("执行模板: %w", err)
			}
			_, err := fmt.Fprintln(w)
			return err
		}
	default:
		return func(w io.Writer, id xksuid.ID) error {
			_, err := fmt.Fprintln(w, id)
			return err
		}
	}
}

// printAll 依次输出。
func (r *resolved) printAll(w io.Writer, ids []xksuid.ID) error {
	p := r.printer()
	for _, id := range ids {
		if err := r.print(w, p, id); err != nil {
			return err
		}
	}
	return nil
}

// print 输出一个 ID，verbose 时以 "<id>: " 开头。
func (r *resolved) print(w io.Writer, p printer, id xksuid.ID) error {
	if r.Verbose {
		if _, err := fmt.Fprintf(w, "%s: ", id); err != nil {
			return err
		}
	}
	return p(w, id)
}
