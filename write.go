/*
 * write.go, part of goMTP.
 *
 * Copyright 2024 Raul Mera <rauldotmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mtp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	CompressNone = "none"
	CompressZstd = "zstd"
	CompressGzip = "gzip"
)

const writeBufSize = 64 * 1024

//WritePool encodes every record with EncodeBlock and writes the blocks, in the order
//of records and separated by a single newline, to the file dest, which is replaced
//if it exists. The file is written to a temporary file in the same directory and then
//renamed, so dest is either fully written or left untouched. Depending on the options
//the file is compressed with zstd or gzip; by default the compression is guessed from the
//extension of dest (.zst or .zstd for zstd, .gz for gzip, no compression otherwise).
//It returns dest. An empty element table gives an error matching ErrNoSpecies, before
//any file is created. Failures while writing match ErrIOFailure.
func WritePool(elements Elements, records []*Record, dest string, opts ...*Options) (string, error) {
	const caller = "WritePool"
	if len(elements) == 0 {
		return "", newError(ErrNoSpecies, "empty element table", caller)
	}
	o := getOptions(opts)
	comp, err := compressionFor(dest, o.Compression)
	if err != nil {
		return "", errDecorate(err, caller)
	}
	blocks, err := encodeAll(elements, records, o)
	if err != nil {
		return "", errDecorate(err, caller)
	}
	if err = writeAtomic(dest, strings.Join(blocks, "\n"), comp, o.CompressionLevel); err != nil {
		return "", errDecorate(err, caller)
	}
	return dest, nil
}

//encodeAll encodes the records using o.Workers goroutines. Each block is
//stored in the position of its record, so the order never changes. If several
//records fail, the error for the first one is returned.
func encodeAll(elements Elements, records []*Record, o *Options) ([]string, error) {
	blocks := make([]string, len(records))
	errs := make([]error, len(records))
	workers := o.Workers
	if workers > len(records) {
		workers = len(records)
	}
	if workers <= 1 {
		for i, r := range records {
			blocks[i], errs[i] = EncodeBlock(elements, r, o)
			if errs[i] != nil {
				break
			}
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					blocks[i], errs[i] = EncodeBlock(elements, records[i], o)
				}
			}()
		}
		for i := range records {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}
	for i, err := range errs {
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("encodeAll: record %d", i))
		}
	}
	return blocks, nil
}

func compressionFor(dest, compression string) (string, error) {
	switch c := strings.ToLower(strings.TrimSpace(compression)); c {
	case CompressNone, CompressZstd, CompressGzip:
		return c, nil
	case "":
	default:
		return "", newError(ErrInvalidInput, fmt.Sprintf("unknown compression %q", compression), "compressionFor")
	}
	switch strings.ToLower(filepath.Ext(dest)) {
	case ".zst", ".zstd":
		return CompressZstd, nil
	case ".gz":
		return CompressGzip, nil
	}
	return CompressNone, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func compressor(w io.Writer, compression string, level int) (io.WriteCloser, error) {
	switch compression {
	case CompressZstd:
		l := zstd.SpeedDefault
		if level > 0 {
			l = zstd.EncoderLevelFromZstd(level)
		}
		return zstd.NewWriter(w, zstd.WithEncoderLevel(l))
	case CompressGzip:
		if level == 0 {
			level = gzip.DefaultCompression
		}
		return gzip.NewWriterLevel(w, level)
	}
	return nopWriteCloser{w}, nil
}

func ioError(filename string, err error, caller string) *CfgError {
	e := newError(ErrIOFailure, "", caller)
	e.filename = filename
	e.err = err
	return e
}

//writeAtomic writes data to a temporary file next to dest and renames it to dest.
//The temporary file is removed on any failure.
func writeAtomic(dest, data, compression string, level int) (err error) {
	const caller = "writeAtomic"
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".gomtp-*.tmp")
	if err != nil {
		return ioError(dest, err, caller)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()
	_ = os.Chmod(tmpPath, 0o644)
	bw := bufio.NewWriterSize(tmp, writeBufSize)
	cw, err := compressor(bw, compression, level)
	if err != nil {
		return ioError(dest, err, caller)
	}
	if _, err = io.WriteString(cw, data); err != nil {
		_ = cw.Close()
		return ioError(dest, err, caller)
	}
	if err = cw.Close(); err != nil {
		return ioError(dest, err, caller)
	}
	if err = bw.Flush(); err != nil {
		return ioError(dest, err, caller)
	}
	if err = tmp.Sync(); err != nil {
		return ioError(dest, err, caller)
	}
	if err = tmp.Close(); err != nil {
		return ioError(dest, err, caller)
	}
	if err = os.Rename(tmpPath, dest); err != nil {
		return ioError(dest, err, caller)
	}
	_ = syncDir(dir)
	return nil
}

//syncDir fsyncs the directory, so the rename survives a crash. Best effort.
func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
