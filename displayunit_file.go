package embryogen

// fileDisplayUnit logs every draw call as one line through a Logger, the
// same idiom logging.go's DefaultLogger uses for everything else -- a
// practical stand-in for a real renderer when none is attached.
type fileDisplayUnit struct {
	log Logger
}

func NewFileDisplayUnit(log Logger) DisplayUnit {
	if log == nil {
		log = NewNopLogger()
	}
	return &fileDisplayUnit{log: log}
}

func (f *fileDisplayUnit) DrawPoint(id int, pos Vec3[float64], color int) {
	f.log.Debugf("draw point id=%d pos=%v color=%d", id, pos, color)
}

func (f *fileDisplayUnit) DrawLine(id int, from, to Vec3[float64], color int) {
	f.log.Debugf("draw line id=%d from=%v to=%v color=%d", id, from, to, color)
}

func (f *fileDisplayUnit) DrawVector(id int, from, dir Vec3[float64], color int) {
	f.log.Debugf("draw vector id=%d from=%v dir=%v color=%d", id, from, dir, color)
}

func (f *fileDisplayUnit) DrawTriangle(id int, a, b, c Vec3[float64], color int) {
	f.log.Debugf("draw triangle id=%d a=%v b=%v c=%v color=%d", id, a, b, c, color)
}

func (f *fileDisplayUnit) Flush()         {}
func (f *fileDisplayUnit) Tick(frame int) { f.log.Debugf("display tick frame=%d", frame) }
